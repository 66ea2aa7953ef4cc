package order

import (
	"errors"
	"fmt"
)

// brackets are the print-run sizes the printer bills at, ascending
var brackets = [...]int{18, 36, 55, 72, 90, 108, 126, 144, 162, 180, 198, 216, 234, 396, 504, 612}

// ErrBracketOverflow is matched by errors.Is for any BracketOverflowError
var ErrBracketOverflow = errors.New("order exceeds the largest bracket")

// BracketOverflowError reports a card count with no bracket above it
type BracketOverflowError struct {
	Quantity int
	Max      int
}

func (e *BracketOverflowError) Error() string {
	return fmt.Sprintf("%d cards does not fit in any bracket (largest is %d)", e.Quantity, e.Max)
}

func (e *BracketOverflowError) Is(target error) bool {
	return target == ErrBracketOverflow
}

// Brackets returns a copy of the bracket table
func Brackets() []int {
	return append([]int(nil), brackets[:]...)
}

// MaxBracket returns the largest supported bracket
func MaxBracket() int {
	return brackets[len(brackets)-1]
}

// Bracket returns the smallest bracket strictly greater than quantity
func Bracket(quantity int) (int, error) {
	for _, b := range brackets {
		if b > quantity {
			return b, nil
		}
	}
	return 0, &BracketOverflowError{Quantity: quantity, Max: MaxBracket()}
}
