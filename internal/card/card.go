package card

import (
	"fmt"
	"strings"
)

// Card represents one card image placed in an order
type Card struct {
	ID    string   // Unique within an order
	Slots []string // Sheet positions this image occupies
	Name  string   // Display name
	Query string   // Search string the autofill tool resolves the image with
	Dir   string   // Where the source image lives
	Front bool     // true for a front face, false for a back face
}

// New builds a card, converting the id and every slot to text
func New(id any, slots []any, name, query, dir string, front bool) Card {
	textSlots := make([]string, 0, len(slots))
	for _, s := range slots {
		textSlots = append(textSlots, fmt.Sprint(s))
	}

	return Card{
		ID:    fmt.Sprint(id),
		Slots: textSlots,
		Name:  name,
		Query: query,
		Dir:   dir,
		Front: front,
	}
}

// SlotList returns the slots joined with commas
func (c Card) SlotList() string {
	return strings.Join(c.Slots, ",")
}
