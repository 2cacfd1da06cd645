package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("LAHMAH_TEST_STR", "value")

	assert.Equal(t, "value", getEnvAsString("LAHMAH_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", getEnvAsString("LAHMAH_TEST_STR_MISSING", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("LAHMAH_TEST_INT", "42")
	t.Setenv("LAHMAH_TEST_INT_BAD", "forty-two")

	assert.Equal(t, 42, getEnvAsInt("LAHMAH_TEST_INT", 7))
	assert.Equal(t, 7, getEnvAsInt("LAHMAH_TEST_INT_BAD", 7))
	assert.Equal(t, 7, getEnvAsInt("LAHMAH_TEST_INT_MISSING", 7))
}

func TestGetEnvAsTimeDuration(t *testing.T) {
	t.Setenv("LAHMAH_TEST_DUR", "90s")
	t.Setenv("LAHMAH_TEST_DUR_BARE", "30")
	t.Setenv("LAHMAH_TEST_DUR_BAD", "soon")

	assert.Equal(t, 90*time.Second, getEnvAsTimeDuration("LAHMAH_TEST_DUR", time.Minute))
	// Bare integers are seconds
	assert.Equal(t, 30*time.Second, getEnvAsTimeDuration("LAHMAH_TEST_DUR_BARE", time.Minute))
	assert.Equal(t, time.Minute, getEnvAsTimeDuration("LAHMAH_TEST_DUR_BAD", time.Minute))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("LAHMAH_TEST_BOOL", "true")
	t.Setenv("LAHMAH_TEST_BOOL_BAD", "yep")

	assert.True(t, getEnvAsBool("LAHMAH_TEST_BOOL", false))
	assert.False(t, getEnvAsBool("LAHMAH_TEST_BOOL_BAD", false))
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("LAHMAH_TEST_SLICE", "a, b ,, c")

	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsSlice("LAHMAH_TEST_SLICE", nil))
	assert.Equal(t, []string{"d"}, getEnvAsSlice("LAHMAH_TEST_SLICE_MISSING", []string{"d"}))
}
