package tennis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISOCountryCode(t *testing.T) {
	assert.Equal(t, "rs", ISOCountryCode("SRB"))
	assert.Equal(t, "ch", ISOCountryCode("sui"))
	assert.Equal(t, "un", ISOCountryCode("Unknown"))
	assert.Equal(t, "un", ISOCountryCode(""))
}

func TestFlagURL(t *testing.T) {
	assert.Equal(t, "https://flagcdn.com/w20/es.png", FlagURL("ESP", 0))
	assert.Equal(t, "https://flagcdn.com/w40/gb.png", FlagURL("GBR", 40))
}
