package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtrHelpers(t *testing.T) {
	assert.Equal(t, 8, *Ptr(8))
	assert.Equal(t, 0, OrZero[int](nil))
	assert.Equal(t, "x", OrZero(Ptr("x")))

	assert.Equal(t, "nick", ValueOr("nick", "name"))
	assert.Equal(t, "name", ValueOr("", "name"))
	assert.Equal(t, 16, ValueOr(0, 16))

	assert.Nil(t, StringOrNil("   "))
	assert.Equal(t, "a", *StringOrNil(" a "))
}
