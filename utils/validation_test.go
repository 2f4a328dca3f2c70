package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidImageSrc(t *testing.T) {
	valid := []string{
		"https://cdn.example.com/photos/hero.jpg",
		"http://example.com/a.png?x=1",
		"/images/rooms/101.webp",
		"images/gallery/pool.JPEG",
		"./assets/logo.gif",
	}
	for _, src := range valid {
		assert.True(t, IsValidImageSrc(src), src)
	}

	invalid := []string{
		"",
		"not a path",
		"/images/script.js",
		"../../etc/passwd",
	}
	for _, src := range invalid {
		assert.False(t, IsValidImageSrc(src), src)
	}
}

func TestAsNumber(t *testing.T) {
	n, ok := AsNumber(float64(3.5))
	assert.True(t, ok)
	assert.Equal(t, 3.5, n)

	n, ok = AsNumber(7)
	assert.True(t, ok)
	assert.Equal(t, 7.0, n)

	_, ok = AsNumber("12")
	assert.False(t, ok)
	_, ok = AsNumber(nil)
	assert.False(t, ok)
}

func TestAsBool(t *testing.T) {
	assert.True(t, AsBool(true))
	assert.True(t, AsBool(float64(1)))
	assert.True(t, AsBool("true"))
	assert.True(t, AsBool("1"))

	assert.False(t, AsBool(false))
	assert.False(t, AsBool(float64(0)))
	assert.False(t, AsBool("yes"))
	assert.False(t, AsBool(nil))
}
