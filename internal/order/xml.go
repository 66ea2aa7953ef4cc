package order

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/arcanaland/mpcfill/internal/card"
)

// Document layout read by the autofill tool. Element names, nesting and
// the field order inside <card> must not change.
type xmlOrder struct {
	XMLName  xml.Name   `xml:"order"`
	Details  xmlDetails `xml:"details"`
	Fronts   xmlCards   `xml:"fronts"`
	Backs    xmlCards   `xml:"backs"`
	CardBack string     `xml:"cardback"`
}

type xmlDetails struct {
	Quantity int    `xml:"quantity"`
	Bracket  int    `xml:"bracket"`
	Stock    string `xml:"stock"`
	Foil     bool   `xml:"foil"`
}

// xmlCards keeps <fronts>/<backs> present even with no cards
type xmlCards struct {
	Cards []xmlCard `xml:"card"`
}

type xmlCard struct {
	ID    string `xml:"id"`
	Slots string `xml:"slots"`
	Name  string `xml:"name"`
	Query string `xml:"query"`
	Dir   string `xml:"dir"`
}

// XML renders the order as a compact document without an XML declaration
func (o *OrderDetails) XML() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.WriteXML(&buf, ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteXML writes the order document to w, indenting each level with
// indent when it is not empty.
func (o *OrderDetails) WriteXML(w io.Writer, indent string) error {
	enc := xml.NewEncoder(w)
	if indent != "" {
		enc.Indent("", indent)
	}

	if err := enc.Encode(o.document()); err != nil {
		return fmt.Errorf("error encoding order: %w", err)
	}
	return enc.Flush()
}

func (o *OrderDetails) document() xmlOrder {
	return xmlOrder{
		Details: xmlDetails{
			Quantity: o.quantity,
			Bracket:  o.bracket,
			Stock:    string(o.stock),
			Foil:     o.foil,
		},
		Fronts:   xmlCardsFor(o.cards, true),
		Backs:    xmlCardsFor(o.cards, false),
		CardBack: o.cardBack,
	}
}

func xmlCardsFor(cards []card.Card, front bool) xmlCards {
	var out xmlCards
	for _, c := range cards {
		if c.Front != front {
			continue
		}
		out.Cards = append(out.Cards, xmlCard{
			ID:    c.ID,
			Slots: c.SlotList(),
			Name:  c.Name,
			Query: c.Query,
			Dir:   c.Dir,
		})
	}
	return out
}
