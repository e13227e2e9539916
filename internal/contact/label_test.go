package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneLabel(t *testing.T) {
	assert.Equal(t, "mobile", PhoneLabel(2))
	assert.Equal(t, "home", PhoneLabel(1))
	assert.Equal(t, "work", PhoneLabel(3))
	assert.Equal(t, "", PhoneLabel(99))
	assert.Equal(t, "", PhoneLabel(0))
}

func TestEmailLabel(t *testing.T) {
	assert.Equal(t, "home", EmailLabel(1))
	assert.Equal(t, "work", EmailLabel(2))
	assert.Equal(t, "", EmailLabel(42))
}

func TestResolveLabelFallback(t *testing.T) {
	// Explicit label wins regardless of type code.
	assert.Equal(t, "Office", ResolveLabel("Office", 2, PhoneLabel))

	// Empty explicit label falls back to the type code.
	assert.Equal(t, "mobile", ResolveLabel("", 2, PhoneLabel))

	// Unknown code degrades to the empty string, never to an absent value.
	assert.Equal(t, "", ResolveLabel("", 77, PhoneLabel))
}
