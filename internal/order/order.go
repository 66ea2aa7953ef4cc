package order

import (
	"github.com/arcanaland/mpcfill/internal/card"
)

// OrderDetails is a print order. Quantity and bracket are computed once
// when the order is built and the card list is private, so they stay in sync.
type OrderDetails struct {
	quantity int
	bracket  int
	stock    Stock
	foil     bool
	cards    []card.Card
	cardBack string
}

// New builds an order from cards in the given order.
//
// Quantity counts every card record, fronts and backs together. The stock
// is copied as given; use ParseStock or Stock.Valid to check it first.
// When the cards do not fit in any bracket New returns a nil order and an
// error matching ErrBracketOverflow.
func New(cards []card.Card, stock Stock, defaultCardBack string) (*OrderDetails, error) {
	quantity := len(cards)

	bracket, err := Bracket(quantity)
	if err != nil {
		return nil, err
	}

	return &OrderDetails{
		quantity: quantity,
		bracket:  bracket,
		stock:    stock,
		foil:     false,
		cards:    cloneCards(cards),
		cardBack: defaultCardBack,
	}, nil
}

func (o *OrderDetails) Quantity() int { return o.quantity }

func (o *OrderDetails) Bracket() int { return o.bracket }

func (o *OrderDetails) Stock() Stock { return o.stock }

// Foil is always false; foil printing is not offered yet.
func (o *OrderDetails) Foil() bool { return o.foil }

// CardBack is the back image used for every front without its own back
func (o *OrderDetails) CardBack() string { return o.cardBack }

// Cards returns a copy of the cards in their original order
func (o *OrderDetails) Cards() []card.Card {
	return cloneCards(o.cards)
}

// Fronts returns the front cards in their original relative order
func (o *OrderDetails) Fronts() []card.Card {
	return o.filter(true)
}

// Backs returns the back cards in their original relative order
func (o *OrderDetails) Backs() []card.Card {
	return o.filter(false)
}

func (o *OrderDetails) filter(front bool) []card.Card {
	var out []card.Card
	for _, c := range o.cards {
		if c.Front == front {
			out = append(out, cloneCard(c))
		}
	}
	return out
}

func cloneCards(cards []card.Card) []card.Card {
	out := make([]card.Card, len(cards))
	for i, c := range cards {
		out[i] = cloneCard(c)
	}
	return out
}

func cloneCard(c card.Card) card.Card {
	c.Slots = append([]string(nil), c.Slots...)
	return c
}
