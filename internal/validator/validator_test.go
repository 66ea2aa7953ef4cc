package validator

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/mpcfill/internal/manifest"
	"github.com/arcanaland/mpcfill/internal/order"
)

func boolPtr(b bool) *bool { return &b }

func entry(id string, front bool, slots ...any) manifest.CardEntry {
	return manifest.CardEntry{
		ID:    id,
		Slots: slots,
		Name:  "name " + id,
		Query: "query " + id,
		Dir:   "dir",
		Front: boolPtr(front),
	}
}

func hasError(results ValidationResults, target error) bool {
	for _, err := range results.Errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func TestValidateClean(t *testing.T) {
	m := &manifest.Manifest{
		Stock:    "S30",
		CardBack: "CARDBACK",
		Cards: []manifest.CardEntry{
			entry("1", true, 1),
			entry("2", true, 2),
			entry("3", false, 2),
		},
	}

	results := NewValidator(m).Validate()
	assert.True(t, results.Valid(), results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		m      *manifest.Manifest
		target error
	}{
		{
			name:   "unknown stock",
			m:      &manifest.Manifest{Stock: "Glossy", CardBack: "b", Cards: []manifest.CardEntry{entry("1", true, 1)}},
			target: order.ErrInvalidStock,
		},
		{
			name:   "card without slots",
			m:      &manifest.Manifest{Stock: "S27", CardBack: "b", Cards: []manifest.CardEntry{entry("1", true)}},
			target: ErrMalformedCard,
		},
		{
			name:   "blank slot",
			m:      &manifest.Manifest{Stock: "S27", CardBack: "b", Cards: []manifest.CardEntry{entry("1", true, " ")}},
			target: ErrMalformedCard,
		},
		{
			name:   "duplicate id",
			m:      &manifest.Manifest{Stock: "S27", CardBack: "b", Cards: []manifest.CardEntry{entry("1", true, 1), entry("1", true, 2)}},
			target: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := NewValidator(tt.m).Validate()
			assert.False(t, results.Valid())
			assert.True(t, hasError(results, tt.target), results.Errors)
		})
	}
}

func TestValidateTooManyCards(t *testing.T) {
	m := &manifest.Manifest{Stock: "S30", CardBack: "b"}
	for i := 0; i < order.MaxBracket(); i++ {
		m.Cards = append(m.Cards, entry(strconv.Itoa(i), true, i))
	}

	results := NewValidator(m).Validate()
	assert.True(t, hasError(results, order.ErrBracketOverflow))
}

func TestValidateWarnings(t *testing.T) {
	m := &manifest.Manifest{
		Cards: []manifest.CardEntry{
			entry("1", true, 1),
			entry("2", true, 1),
			entry("3", false, 9),
			{ID: "4", Slots: []any{4}, Front: boolPtr(true)},
		},
	}

	results := NewValidator(m).Validate()
	require.True(t, results.Valid(), results.Errors)
	assert.Contains(t, results.Warnings, "stock is not set, the configured default will be used")
	assert.Contains(t, results.Warnings, "cardback is not set, the configured default will be used")
	assert.Contains(t, results.Warnings, "slot 1 is used by fronts 1 and 2")
	assert.Contains(t, results.Warnings, "back 3 uses slot 9 which has no front")
	assert.Contains(t, results.Warnings, "card 4 (4) has no query")
}
