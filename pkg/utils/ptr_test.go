package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPtr(t *testing.T) {
	s := ToPtr("corrective")
	assert.Equal(t, "corrective", *s)

	f := ToPtr(2.5)
	assert.Equal(t, 2.5, *f)
}

func TestSafeDeref(t *testing.T) {
	v := "Mechanics"
	assert.Equal(t, "Mechanics", SafeDeref(&v))

	var nilStr *string
	assert.Equal(t, "", SafeDeref(nilStr))

	var nilFloat *float64
	assert.Equal(t, 0.0, SafeDeref(nilFloat))
}
