package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/toolgate/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ada@example.com", sanitizer.NormalizeEmail("  Ada@Example.COM \n"))
	assert.Equal(t, "first.last@example.com", sanitizer.NormalizeEmail("first.last@example.com"))
	assert.Equal(t, "", sanitizer.NormalizeEmail("   "))
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ada Lovelace", sanitizer.NormalizeWhitespace("  Ada \t\n Lovelace "))
	assert.Equal(t, "", sanitizer.NormalizeWhitespace(" \t "))
}

func TestStripControl(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ada\tL\n", sanitizer.StripControl("A\x00da\tL\x1b\n\x7f"))
}

func TestApplyAndCompose(t *testing.T) {
	t.Parallel()

	got := sanitizer.Apply(" \x00Ada   Lovelace ", sanitizer.StripControl, sanitizer.NormalizeWhitespace)
	assert.Equal(t, "Ada Lovelace", got)

	shout := sanitizer.Compose(strings.TrimSpace, strings.ToUpper)
	assert.Equal(t, "ADA", shout("  ada "))
}
