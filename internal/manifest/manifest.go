// Package manifest reads order manifests, the TOML or YAML files that
// list the cards of an order along with its stock and card back.
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/mpcfill/internal/card"
)

// Format is the encoding of a manifest
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Manifest represents a decoded order manifest
type Manifest struct {
	Stock    string      `toml:"stock" yaml:"stock"`
	CardBack string      `toml:"cardback" yaml:"cardback"`
	Cards    []CardEntry `toml:"cards" yaml:"cards"`

	// Path is where the manifest was read from, "-" for stdin
	Path string `toml:"-" yaml:"-"`
}

// CardEntry is one card as written in a manifest. Ids and slots may be
// numbers or strings.
type CardEntry struct {
	ID    any    `toml:"id" yaml:"id"`
	Slots []any  `toml:"slots" yaml:"slots"`
	Name  string `toml:"name" yaml:"name"`
	Query string `toml:"query" yaml:"query"`
	Dir   string `toml:"dir" yaml:"dir"`
	Front *bool  `toml:"front" yaml:"front"`
}

// FormatForPath picks the format from the file extension, TOML by default
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads a manifest from a file, picking the format from its extension
func Load(path string) (*Manifest, error) {
	return LoadFormat(path, FormatForPath(path))
}

// LoadFormat reads a manifest from a file in the given format
func LoadFormat(path string, format Format) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Read decodes a manifest from r
func Read(r io.Reader, format Format) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes manifest data. Cards without an id get a random one.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
			return nil, fmt.Errorf("invalid toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", format)
	}

	for i := range m.Cards {
		if id := m.Cards[i].ID; id == nil || fmt.Sprint(id) == "" {
			m.Cards[i].ID = uuid.NewString()
		}
	}

	return &m, nil
}

// IsFront reports the face of the entry; entries without one are fronts
func (e CardEntry) IsFront() bool {
	return e.Front == nil || *e.Front
}

// Card converts the entry into a card
func (e CardEntry) Card() card.Card {
	return card.New(e.ID, e.Slots, e.Name, e.Query, e.Dir, e.IsFront())
}

// OrderCards returns the manifest cards in file order
func (m *Manifest) OrderCards() []card.Card {
	cards := make([]card.Card, 0, len(m.Cards))
	for _, e := range m.Cards {
		cards = append(cards, e.Card())
	}
	return cards
}
