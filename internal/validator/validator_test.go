package validator

import (
	"testing"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
)

func TestValidator_Check(t *testing.T) {
	v := New()
	v.Check(true, "price", "must be greater than zero")
	assert.True(t, v.Valid())

	v.Check(false, "price", "must be greater than zero")
	assert.False(t, v.Valid())
	assert.Equal(t, "must be greater than zero", v.Errors["price"])

	// The first message for a key wins.
	v.Check(false, "price", "another message")
	assert.Equal(t, "must be greater than zero", v.Errors["price"])
}

func TestIn(t *testing.T) {
	assert.True(t, In("SP", "SP", "RJ", "MG"))
	assert.False(t, In("BA", "SP", "RJ", "MG"))
}

func TestUnique(t *testing.T) {
	assert.True(t, Unique([]string{"a", "b", "c"}))
	assert.False(t, Unique([]string{"a", "b", "a"}))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("driver@example.com", EmailRX))
	assert.False(t, Matches("not-an-email", EmailRX))
}

func TestMime(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	mtype := mimetype.Detect(png)
	assert.True(t, Mime(mtype, "image/jpeg", "image/png"))
	assert.False(t, Mime(mtype, "application/pdf"))
}
