package fs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scribefs "github.com/aretw0/scribe/pkg/adapters/fs"
	"github.com/aretw0/scribe/pkg/core"
)

var sampleNotes = []core.Note{
	{ID: 1, Title: "Groceries", Body: "Milk, eggs", Timestamp: "2024-01-15 09:30:00"},
	{ID: 4, Title: "Quote \"this\"", Body: "line one\nline two", Timestamp: "2024-01-16 18:00:00"},
}

func TestSerializers_RoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml", "csv"} {
		t.Run(format, func(t *testing.T) {
			s, err := scribefs.SerializerFor(format)
			require.NoError(t, err)
			data, err := s.Serialize(sampleNotes)
			require.NoError(t, err)

			p, err := scribefs.ParserFor(format)
			require.NoError(t, err)
			parsed, err := p.Parse(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, sampleNotes, parsed)
		})
	}
}

func TestSerializerFor_Aliases(t *testing.T) {
	for _, format := range []string{".json", "YAML", ".yml", "markdown", ".md", "csv"} {
		_, err := scribefs.SerializerFor(format)
		assert.NoError(t, err, format)
	}

	_, err := scribefs.SerializerFor("toml")
	assert.ErrorIs(t, err, scribefs.ErrUnknownFormat)

	_, err = scribefs.ParserFor("md")
	assert.ErrorIs(t, err, scribefs.ErrUnknownFormat, "markdown is write-only")
}

func TestMarkdownSerializer(t *testing.T) {
	data, err := scribefs.MarkdownSerializer{}.Serialize(sampleNotes)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "## Groceries\n\n_#1 · 2024-01-15 09:30:00_\n\nMilk, eggs\n"))
	assert.Contains(t, out, "## Quote \"this\"")
	assert.Contains(t, out, "line one\nline two\n")
}

func TestCSVSerializer_ParseLoose(t *testing.T) {
	input := "title,body\nTodo,Call plumber\nEmpty,\n"

	notes, err := scribefs.CSVSerializer{}.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, core.Note{Title: "Todo", Body: "Call plumber"}, notes[0])
	assert.Equal(t, "Empty", notes[1].Title)

	_, err = scribefs.CSVSerializer{}.Parse(strings.NewReader("body\nx\n"))
	assert.Error(t, err, "title column is required")

	_, err = scribefs.CSVSerializer{}.Parse(strings.NewReader("note_id,title\nabc,x\n"))
	assert.Error(t, err)
}

func TestYAMLSerializer_Empty(t *testing.T) {
	notes, err := scribefs.YAMLSerializer{}.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}
