package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitWork(t *testing.T) {
	const workSize = 1000
	var seen [workSize]atomic.Uint32
	var inits atomic.Int32

	err := SplitWork(8, workSize, func(workIndex uint64, routineIndex int) error {
		seen[workIndex].Add(1)
		return nil
	}, func(routines, routineIndex int) error {
		require.Equal(t, 8, routines)
		inits.Add(1)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int32(8), inits.Load())

	for i := range seen {
		require.Equal(t, uint32(1), seen[i].Load(), "index %d", i)
	}
}

func TestSplitWork_SmallWork(t *testing.T) {
	var routinesUsed int
	err := SplitWork(16, 3, func(workIndex uint64, routineIndex int) error {
		return nil
	}, func(routines, routineIndex int) error {
		routinesUsed = routines
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, routinesUsed)

	require.NoError(t, SplitWork(4, 0, func(workIndex uint64, routineIndex int) error {
		t.Fatal("no work expected")
		return nil
	}, nil))
}

func TestSplitWork_Error(t *testing.T) {
	errStop := errors.New("stop")
	err := SplitWork(4, 100, func(workIndex uint64, routineIndex int) error {
		if workIndex == 10 {
			return errStop
		}
		return nil
	}, nil)
	require.ErrorIs(t, err, errStop)
}

func TestSplitWorkContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := SplitWorkContext(ctx, 4, 100, func(workIndex uint64, routineIndex int) error {
		return nil
	}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
