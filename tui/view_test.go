package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	require.Equal(t, strings.Repeat("░", 20), progressBar(0, 20))
	require.Equal(t, strings.Repeat("█", 10)+strings.Repeat("░", 10), progressBar(0.5, 20))
	require.Equal(t, strings.Repeat("█", 20), progressBar(1, 20))

	// The last second of a phase still renders as a full bar.
	require.Equal(t, strings.Repeat("█", 30), progressBar(1499.0/1500.0, 30))
}
