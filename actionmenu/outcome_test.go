package actionmenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	for _, o := range []Outcome{{}, Dialog(0), Dialog(42), Vendor(), Cancel()} {
		got, err := ParseIdentifier(o.ID())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
}

func TestParseIdentifierErrors(t *testing.T) {
	for _, id := range []string{"dialog:", "dialog:x", "id_dialog_3", "shop"} {
		_, err := ParseIdentifier(id)
		assert.Error(t, err, id)
	}
	assert.Panics(t, func() { MustParseIdentifier("dialog:seven") })
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "none", Outcome{}.String())
	assert.Equal(t, "dialog:3", Dialog(3).String())
	assert.Equal(t, "vendor", Vendor().String())
	assert.Equal(t, "cancel", Cancel().String())
}
