package order

import (
	"errors"
	"fmt"
	"strings"
)

// Stock is a card stock preset label as the printer names it
type Stock string

const (
	StockSmooth         Stock = "(S27) Smooth"
	StockStandardSmooth Stock = "(S30) Standard Smooth"
	StockSuperiorSmooth Stock = "(S33) Superior Smooth"
	StockLinen          Stock = "(M31) Linen"
	StockThickStandard  Stock = "(A35) Thick Standard"
	StockPlastic        Stock = "(P10) Plastic"
)

// DefaultStock is used when neither a manifest nor the config picks one
const DefaultStock = StockStandardSmooth

// ErrInvalidStock is returned for a stock outside the preset catalog
var ErrInvalidStock = errors.New("unknown card stock")

var stocks = [...]Stock{
	StockSmooth,
	StockStandardSmooth,
	StockSuperiorSmooth,
	StockLinen,
	StockThickStandard,
	StockPlastic,
}

// Stocks returns the preset catalog in order
func Stocks() []Stock {
	return append([]Stock(nil), stocks[:]...)
}

// Valid reports whether s is one of the presets
func (s Stock) Valid() bool {
	for _, preset := range stocks {
		if s == preset {
			return true
		}
	}
	return false
}

// Code returns the bracketed code, e.g. "S30"
func (s Stock) Code() string {
	label := string(s)
	if !strings.HasPrefix(label, "(") {
		return ""
	}
	end := strings.Index(label, ")")
	if end < 0 {
		return ""
	}
	return label[1:end]
}

// ParseStock accepts a full preset label or its bare code (case-insensitive)
func ParseStock(s string) (Stock, error) {
	s = strings.TrimSpace(s)
	for _, preset := range stocks {
		if s == string(preset) || strings.EqualFold(s, preset.Code()) {
			return preset, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStock, s)
}
