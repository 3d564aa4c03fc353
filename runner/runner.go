package runner

import (
	"context"
	"math/rand"

	"go.uber.org/atomic"
	"golang.org/x/exp/slices"

	"github.com/iotaledger/dll/ierrors"
	"github.com/iotaledger/dll/list"
	"github.com/iotaledger/dll/lo"
	"github.com/iotaledger/dll/logger"
	"github.com/iotaledger/dll/options"
	"github.com/iotaledger/dll/workerpool"
)

var (
	// ErrVerificationFailed is returned if a sorted or reversed list does not hold the expected sequence.
	ErrVerificationFailed = ierrors.New("verification failed")
	// ErrInvalidParameter is returned if the Runner was configured with an unusable value.
	ErrInvalidParameter = ierrors.New("invalid parameter")
)

// Stats counts the work done by a Runner.
type Stats struct {
	// Rounds is the number of rounds that were scheduled.
	Rounds atomic.Int64
	// VerifiedRounds is the number of rounds whose lists passed every check.
	VerifiedRounds atomic.Int64
	// FailedRounds is the number of rounds that returned an error.
	FailedRounds atomic.Int64
	// Elements is the number of elements that were sorted and verified.
	Elements atomic.Int64
}

// Runner fills lists with random integers, sorts and reverses them and verifies the outcome against a deep copy.
type Runner struct {
	*logger.WrappedLogger

	listSize    int
	rounds      int
	workerCount int
	seed        int64
	maxValue    int
}

// New creates a new Runner.
func New(opts ...options.Option[Runner]) *Runner {
	return options.Apply(&Runner{
		WrappedLogger: logger.NewWrappedLogger(nil),
		listSize:      20000,
		rounds:        1,
		workerCount:   1,
		seed:          1,
		maxValue:      1000,
	}, opts)
}

// WithListSize sets the number of elements of every list.
func WithListSize(listSize int) options.Option[Runner] {
	return func(r *Runner) {
		r.listSize = listSize
	}
}

// WithRounds sets the number of lists that are built and verified.
func WithRounds(rounds int) options.Option[Runner] {
	return func(r *Runner) {
		r.rounds = rounds
	}
}

// WithWorkerCount sets the number of rounds that run concurrently.
func WithWorkerCount(workerCount int) options.Option[Runner] {
	return func(r *Runner) {
		r.workerCount = workerCount
	}
}

// WithSeed sets the seed of the first round. Round i uses seed+i.
func WithSeed(seed int64) options.Option[Runner] {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithMaxValue sets the exclusive upper bound of the random values.
func WithMaxValue(maxValue int) options.Option[Runner] {
	return func(r *Runner) {
		r.maxValue = maxValue
	}
}

// WithLogger sets the logger of the Runner.
func WithLogger(log *logger.Logger) options.Option[Runner] {
	return func(r *Runner) {
		r.WrappedLogger = logger.NewWrappedLogger(log)
	}
}

// Run executes all rounds on a worker pool and returns the collected Stats. Every round owns its lists, so no list is
// shared between goroutines. A cancelled context stops scheduling further rounds. The returned error is the context
// error or the error of the first failed round.
func (r *Runner) Run(ctx context.Context) (*Stats, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	stats := new(Stats)

	pool, err := workerpool.New(func(task workerpool.Task) {
		task.Return(r.round(ctx, task.Param(0).(int), stats))
	}, workerpool.WorkerCount(r.workerCount), workerpool.WithLogger(r.LoggerNamed("WorkerPool")))
	if err != nil {
		return nil, err
	}

	results := make([]chan interface{}, 0, r.rounds)

	var runErr error
	for round := 0; round < r.rounds; round++ {
		if runErr = ctx.Err(); runErr != nil {
			break
		}

		result, submitErr := pool.Submit(round)
		if submitErr != nil {
			runErr = ierrors.Wrapf(submitErr, "unable to schedule round %d", round)

			break
		}

		stats.Rounds.Inc()
		results = append(results, result)
	}

	pool.StopAndWait()

	if ctx.Err() != nil {
		r.LogInfof("stopped after scheduling %d of %d rounds: %s", stats.Rounds.Load(), r.rounds, ctx.Err())
	}

	for _, result := range results {
		if roundErr, isErr := (<-result).(error); isErr && runErr == nil {
			runErr = roundErr
		}
	}

	r.LogDebugf("finished %d of %d rounds, %d verified, %d failed", stats.Rounds.Load(), r.rounds, stats.VerifiedRounds.Load(), stats.FailedRounds.Load())

	return stats, runErr
}

func (r *Runner) validate() error {
	switch {
	case r.listSize < 0:
		return ierrors.Wrapf(ErrInvalidParameter, "list size must not be negative but is %d", r.listSize)
	case r.rounds < 1:
		return ierrors.Wrapf(ErrInvalidParameter, "rounds must be at least 1 but is %d", r.rounds)
	case r.workerCount < 1:
		return ierrors.Wrapf(ErrInvalidParameter, "worker count must be at least 1 but is %d", r.workerCount)
	case r.maxValue < 1:
		return ierrors.Wrapf(ErrInvalidParameter, "max value must be at least 1 but is %d", r.maxValue)
	default:
		return nil
	}
}

func (r *Runner) round(ctx context.Context, index int, stats *Stats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.sortAndVerify(r.seed + int64(index)); err != nil {
		stats.FailedRounds.Inc()
		r.LogErrorf("round %d failed: %s", index, err)

		return ierrors.Wrapf(err, "round %d failed", index)
	}

	stats.VerifiedRounds.Inc()
	stats.Elements.Add(int64(r.listSize))
	r.LogDebugf("round %d verified %d elements", index, r.listSize)

	return nil
}

func (r *Runner) sortAndVerify(seed int64) error {
	random := rand.New(rand.NewSource(seed))

	original := list.New[int]()
	defer func() { _ = original.Clear() }()

	for i := 0; i < r.listSize; i++ {
		if err := original.AppendValue(random.Intn(r.maxValue)); err != nil {
			return ierrors.Wrap(err, "unable to fill the list")
		}
	}

	copied := list.New[int]()
	defer func() { _ = copied.Clear() }()

	if err := original.DeepCopy(copied); err != nil {
		return ierrors.Wrap(err, "unable to copy the list")
	}

	expected := copied.Values()
	slices.Sort(expected)

	if err := original.Sort(lo.IntComparator); err != nil {
		return ierrors.Wrap(err, "unable to sort the list")
	}
	if err := verifyAscending(original, expected); err != nil {
		return err
	}

	if err := original.Reverse(); err != nil {
		return ierrors.Wrap(err, "unable to reverse the list")
	}
	slices.Reverse(expected)

	return verifyDescending(original, expected)
}

// verifyAscending checks that the list is ascending and holds the same values as expected.
func verifyAscending(l *list.List[int], expected []int) error {
	values := l.Values()
	if !slices.IsSorted(values) {
		return ierrors.Wrap(ErrVerificationFailed, "list is not in ascending order")
	}

	if !slices.Equal(values, expected) {
		return ierrors.Wrap(ErrVerificationFailed, "sorted list does not hold the values of its copy")
	}

	return nil
}

// verifyDescending walks the list with an iterator until it turns around and compares every value with expected.
func verifyDescending(l *list.List[int], expected []int) error {
	if l.Count() != len(expected) {
		return ierrors.Wrapf(ErrVerificationFailed, "list holds %d elements instead of %d", l.Count(), len(expected))
	}

	if l.Count() == 0 {
		return nil
	}

	iterator := l.Iterator()
	defer iterator.Free()

	for position := 0; ; position++ {
		value, status, err := iterator.Next()
		if err != nil {
			return ierrors.Wrapf(err, "unable to read position %d", position)
		}

		if status == list.StatusTurnaround {
			if position != len(expected) {
				return ierrors.Wrapf(ErrVerificationFailed, "iterator turned around after %d of %d elements", position, len(expected))
			}

			return nil
		}

		if position >= len(expected) {
			return ierrors.Wrapf(ErrVerificationFailed, "iterator did not turn around after %d elements", position)
		}

		if *value != expected[position] {
			return ierrors.Wrapf(ErrVerificationFailed, "position %d holds %d instead of %d", position, *value, expected[position])
		}
	}
}
