package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, isTruthy(nil))
	assert.False(t, isTruthy(false))
	assert.True(t, isTruthy(true))
	assert.True(t, isTruthy(float64(0)))
	assert.True(t, isTruthy(""))
	assert.True(t, isTruthy("anything"))
}

func TestValuesEqual(t *testing.T) {
	assert.True(t, valuesEqual(nil, nil))
	assert.False(t, valuesEqual(nil, float64(0)))
	assert.True(t, valuesEqual(float64(1), float64(1)))
	assert.False(t, valuesEqual(float64(1), "1"))
	assert.True(t, valuesEqual("a", "a"))
}

func TestStringifyStripsTrailingZero(t *testing.T) {
	assert.Equal(t, "3", stringify(float64(3)))
	assert.Equal(t, "3.5", stringify(float64(3.5)))
	assert.Equal(t, "nil", stringify(nil))
	assert.Equal(t, "true", stringify(true))
	assert.Equal(t, "false", stringify(false))
	assert.Equal(t, "hi", stringify("hi"))
}
