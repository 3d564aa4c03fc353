package runner

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dll/list"
	"github.com/iotaledger/dll/logger"
)

func TestRunner_Run(t *testing.T) {
	stats, err := New().Run(context.Background())
	require.NoError(t, err)

	require.EqualValues(t, 1, stats.Rounds.Load())
	require.EqualValues(t, 1, stats.VerifiedRounds.Load())
	require.EqualValues(t, 0, stats.FailedRounds.Load())
	require.EqualValues(t, 20000, stats.Elements.Load())
}

func TestRunner_RunConcurrent(t *testing.T) {
	runner := New(
		WithListSize(2000),
		WithRounds(16),
		WithWorkerCount(4),
		WithSeed(42),
		WithMaxValue(50),
	)

	stats, err := runner.Run(context.Background())
	require.NoError(t, err)

	require.EqualValues(t, 16, stats.Rounds.Load())
	require.EqualValues(t, 16, stats.VerifiedRounds.Load())
	require.EqualValues(t, 16*2000, stats.Elements.Load())
}

func TestRunner_RunEdgeSizes(t *testing.T) {
	for _, listSize := range []int{0, 1, 2, 3} {
		stats, err := New(WithListSize(listSize), WithRounds(3)).Run(context.Background())
		require.NoError(t, err, "list size %d", listSize)
		require.EqualValues(t, 3, stats.VerifiedRounds.Load())
	}
}

func TestRunner_RunWithLogger(t *testing.T) {
	log, err := logger.NewRootLogger(logger.Config{
		Level:       "debug",
		OutputPaths: []string{os.DevNull},
	})
	require.NoError(t, err)

	stats, err := New(WithListSize(100), WithRounds(2), WithLogger(log)).Run(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.VerifiedRounds.Load())
}

func TestRunner_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := New(WithRounds(5)).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.EqualValues(t, 0, stats.Rounds.Load())
	require.EqualValues(t, 0, stats.VerifiedRounds.Load())
}

func TestRunner_InvalidParameters(t *testing.T) {
	for _, runner := range []*Runner{
		New(WithListSize(-1)),
		New(WithRounds(0)),
		New(WithWorkerCount(0)),
		New(WithMaxValue(0)),
	} {
		_, err := runner.Run(context.Background())
		require.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestVerifyAscending(t *testing.T) {
	require.NoError(t, verifyAscending(intList(t, 1, 2, 2, 3), []int{1, 2, 2, 3}))

	require.ErrorIs(t, verifyAscending(intList(t, 2, 1, 3), []int{1, 2, 3}), ErrVerificationFailed)

	// sorted, but a value got lost on the way
	require.ErrorIs(t, verifyAscending(intList(t, 1, 3, 3), []int{1, 2, 3}), ErrVerificationFailed)
}

func TestVerifyDescending(t *testing.T) {
	require.NoError(t, verifyDescending(intList(t, 3, 2, 1), []int{3, 2, 1}))
	require.NoError(t, verifyDescending(intList(t), []int{}))

	require.ErrorIs(t, verifyDescending(intList(t, 3, 1, 2), []int{3, 2, 1}), ErrVerificationFailed)
	require.ErrorIs(t, verifyDescending(intList(t, 3, 2), []int{3, 2, 1}), ErrVerificationFailed)
}

func intList(t *testing.T, values ...int) *list.List[int] {
	t.Helper()

	l := list.New[int]()
	for _, value := range values {
		require.NoError(t, l.AppendValue(value))
	}

	return l
}
