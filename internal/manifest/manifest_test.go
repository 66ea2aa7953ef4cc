package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/mpcfill/internal/card"
)

const tomlManifest = `
stock = "(S30) Standard Smooth"
cardback = "CARDBACK"

[[cards]]
id = 1
slots = [1, 2]
name = "Island"
query = "island"
dir = "basics"

[[cards]]
id = "b1"
slots = ["2"]
name = "Custom back"
query = "back"
dir = "backs"
front = false
`

const yamlManifest = `
stock: "(M31) Linen"
cardback: shared-back
cards:
  - id: 1
    slots: [1, 2]
    name: Island
    query: island
    dir: basics
  - id: b1
    slots: ["2"]
    name: Custom back
    query: back
    dir: backs
    front: false
`

func wantCards() []card.Card {
	return []card.Card{
		{ID: "1", Slots: []string{"1", "2"}, Name: "Island", Query: "island", Dir: "basics", Front: true},
		{ID: "b1", Slots: []string{"2"}, Name: "Custom back", Query: "back", Dir: "backs", Front: false},
	}
}

func TestParseTOML(t *testing.T) {
	m, err := Parse([]byte(tomlManifest), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "(S30) Standard Smooth", m.Stock)
	assert.Equal(t, "CARDBACK", m.CardBack)
	if diff := cmp.Diff(wantCards(), m.OrderCards()); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML(t *testing.T) {
	m, err := Parse([]byte(yamlManifest), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "(M31) Linen", m.Stock)
	assert.Equal(t, "shared-back", m.CardBack)
	if diff := cmp.Diff(wantCards(), m.OrderCards()); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAssignsMissingIDs(t *testing.T) {
	m, err := Parse([]byte(`
[[cards]]
slots = [1]
name = "no id"

[[cards]]
id = ""
slots = [2]
`), FormatTOML)
	require.NoError(t, err)

	cards := m.OrderCards()
	require.Len(t, cards, 2)
	for _, c := range cards {
		_, err := uuid.Parse(c.ID)
		assert.NoError(t, err, c.ID)
	}
	assert.NotEqual(t, cards[0].ID, cards[1].ID)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("cards = ["), FormatTOML)
	assert.ErrorContains(t, err, "invalid toml")

	_, err = Parse([]byte("cards: [\n"), FormatYAML)
	assert.ErrorContains(t, err, "invalid yaml")

	_, err = Parse(nil, Format("json"))
	assert.ErrorContains(t, err, "unsupported manifest format")
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("order.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("ORDER.YML"))
	assert.Equal(t, FormatTOML, FormatForPath("order.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("order"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlManifest), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, m.Path)
	assert.Len(t, m.Cards, 2)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "error reading manifest")
}

func TestRead(t *testing.T) {
	m, err := Read(strings.NewReader(tomlManifest), FormatTOML)
	require.NoError(t, err)
	assert.Len(t, m.OrderCards(), 2)
}
