package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ParseTime parses a time, failing the test if it cannot be parsed.
func ParseTime(t *testing.T, layout, s string) time.Time {
	t.Helper()

	got, err := time.Parse(layout, s)
	require.NoError(t, err)
	return got
}
