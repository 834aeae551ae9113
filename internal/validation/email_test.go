package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	valid := []string{
		"joe@smith.com",
		"sally.jones@example.co.uk",
		"user+tag@example.com",
	}
	for _, s := range valid {
		assert.True(t, IsEmail(s), s)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@domain@twice.com",
		"spaces in@address.com",
		"Joe Smith <joe@smith.com>",
	}
	for _, s := range invalid {
		assert.False(t, IsEmail(s), s)
	}
}
