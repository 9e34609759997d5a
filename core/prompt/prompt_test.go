package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("GES12\nGES05401234\n\n"), &out)

	sku, err := p.Text("SKU", "GES054", MatchRegexp(`^GES[0-9]{8}$`))
	require.NoError(t, err)
	assert.Equal(t, "GES05401234", sku)
	assert.Contains(t, out.String(), "invalid value")
	assert.Contains(t, out.String(), "? SKU [GES054]: ")

	name, err := p.Text("Name", "RAD ", nil)
	require.NoError(t, err)
	assert.Equal(t, "RAD ", name)
}

func TestText_EOF(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("12\n"), &bytes.Buffer{})

	_, err := p.Text("quantity", "", func(string) error { return assert.AnError })
	assert.ErrorIs(t, err, ErrAborted)
}

func TestText_LastLineWithoutNewline(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("7"), &bytes.Buffer{})

	got, err := p.Text("quantity", "", NonNegativeInt)
	require.NoError(t, err)
	assert.Equal(t, "7", got)
}

func TestConfirm(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("maybe\nn\n\nYES\n"), &bytes.Buffer{})

	ok, err := p.Confirm("Correct?", true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.Confirm("Correct?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Confirm("Correct?", false)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = p.Confirm("Correct?", false)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestNonNegativeInt(t *testing.T) {
	for _, s := range []string{"0", "5", "120"} {
		assert.NoError(t, NonNegativeInt(s), s)
	}
	for _, s := range []string{"", "-1", "1.5", "+3", "abc"} {
		assert.Error(t, NonNegativeInt(s), s)
	}
}
