package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/mpcfill/internal/manifest"
	"github.com/arcanaland/mpcfill/internal/order"
)

var (
	// ErrMalformedCard marks a card that cannot be placed, e.g. one with no slots
	ErrMalformedCard = errors.New("malformed card")
	// ErrDuplicateID marks a card id used more than once
	ErrDuplicateID = errors.New("duplicate card id")
)

type ValidationResults struct {
	Errors   []error
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

// Validator applies the strict checks order.New leaves out
type Validator struct {
	Manifest *manifest.Manifest
	Results  ValidationResults
}

func NewValidator(m *manifest.Manifest) *Validator {
	return &Validator{
		Manifest: m,
		Results:  ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateStock()
	v.validateCardBack()
	v.validateQuantity()
	v.validateCards()
	v.validateSlots()

	return v.Results
}

func (v *Validator) addError(err error) {
	v.Results.Errors = append(v.Results.Errors, err)
}

func (v *Validator) addWarning(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateStock() {
	if v.Manifest.Stock == "" {
		v.addWarning("stock is not set, the configured default will be used")
		return
	}

	if _, err := order.ParseStock(v.Manifest.Stock); err != nil {
		v.addError(err)
	}
}

func (v *Validator) validateCardBack() {
	if strings.TrimSpace(v.Manifest.CardBack) == "" {
		v.addWarning("cardback is not set, the configured default will be used")
	}
}

func (v *Validator) validateQuantity() {
	if _, err := order.Bracket(len(v.Manifest.Cards)); err != nil {
		v.addError(err)
	}
}

// validateCards checks each card on its own and ids across the order
func (v *Validator) validateCards() {
	seen := make(map[string]int)

	for i, entry := range v.Manifest.Cards {
		c := entry.Card()
		label := fmt.Sprintf("card %d (%s)", i+1, c.ID)

		if len(c.Slots) == 0 {
			v.addError(fmt.Errorf("%w: %s has no slots", ErrMalformedCard, label))
		}

		for _, slot := range c.Slots {
			if strings.TrimSpace(slot) == "" {
				v.addError(fmt.Errorf("%w: %s has an empty slot", ErrMalformedCard, label))
				break
			}
		}

		if first, ok := seen[c.ID]; ok {
			v.addError(fmt.Errorf("%w: %s repeats card %d", ErrDuplicateID, label, first))
		} else {
			seen[c.ID] = i + 1
		}

		if c.Query == "" {
			v.addWarning("%s has no query", label)
		}
	}
}

// validateSlots checks how fronts and backs share slots
func (v *Validator) validateSlots() {
	fronts := make(map[string]string)

	for _, entry := range v.Manifest.Cards {
		c := entry.Card()
		if !c.Front {
			continue
		}
		for _, slot := range c.Slots {
			if other, ok := fronts[slot]; ok {
				v.addWarning("slot %s is used by fronts %s and %s", slot, other, c.ID)
				continue
			}
			fronts[slot] = c.ID
		}
	}

	for _, entry := range v.Manifest.Cards {
		c := entry.Card()
		if c.Front {
			continue
		}
		for _, slot := range c.Slots {
			if _, ok := fronts[slot]; !ok {
				v.addWarning("back %s uses slot %s which has no front", c.ID, slot)
			}
		}
	}
}
