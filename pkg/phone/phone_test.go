package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("international number", func(t *testing.T) {
		got, err := Normalize("+1 415 555 2671", "")
		assert.NoError(t, err)
		assert.Equal(t, "+14155552671", got)
	})

	t.Run("national number with region", func(t *testing.T) {
		got, err := Normalize("(415) 555-2671", "US")
		assert.NoError(t, err)
		assert.Equal(t, "+14155552671", got)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := Normalize("ext. 42", "US")
		assert.Error(t, err)
	})
}

func TestNormalizeOrKeep(t *testing.T) {
	assert.Equal(t, "+14155552671", NormalizeOrKeep("+1 415 555 2671", ""))
	assert.Equal(t, "ext. 42", NormalizeOrKeep("ext. 42", ""))
	assert.Equal(t, "", NormalizeOrKeep("", ""))
}
