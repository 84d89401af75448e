package debug_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pargraph/internal/debug"
)

func TestAssert(t *testing.T) {
	require.NotPanics(t, func() { debug.Assert(true, "holds") })
	require.NotPanics(t, func() { debug.Assertf(true, "holds %d", 1) })

	if debug.Enabled {
		require.Panics(t, func() { debug.Assert(false, "broken") })
		require.PanicsWithValue(t, "pargraph: assertion failed: v=3", func() { debug.Assertf(false, "v=%d", 3) })
	} else {
		require.NotPanics(t, func() { debug.Assert(false, "ignored in release builds") })
	}
}
