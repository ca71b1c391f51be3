// File: /utils/validators_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("traveler@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.domain.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Str0ngpass"))
	assert.True(t, IsValidPassword("abc123!x"))
	assert.False(t, IsValidPassword("short"))
	assert.False(t, IsValidPassword("alllowercase"))
}

func TestIsValidMediaKind(t *testing.T) {
	assert.True(t, IsValidMediaKind("photo"))
	assert.True(t, IsValidMediaKind("video"))
	assert.False(t, IsValidMediaKind("audio"))
	assert.False(t, IsValidMediaKind(""))
}
