// dllsort fills doubly linked lists with random integers, sorts and reverses them and verifies the result.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/dll/configuration"
	"github.com/iotaledger/dll/ierrors"
	"github.com/iotaledger/dll/logger"
	"github.com/iotaledger/dll/runner"
)

const envPrefix = "DLLSORT"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return
		}

		fmt.Fprintf(os.Stderr, "dllsort: %s\n", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	config, runnerParams, err := loadConfiguration(args)
	if err != nil {
		return err
	}

	if err = logger.InitGlobalLogger(config); err != nil {
		return ierrors.Wrap(err, "unable to initialize the logger")
	}

	log := logger.NewLogger("dllsort")
	defer func() { _ = log.Sync() }()

	if dumped, dumpErr := config.Dump(); dumpErr == nil {
		log.Debugf("parameters loaded:\n%s", dumped)
	}

	start := time.Now()
	stats, err := runner.New(
		runner.WithListSize(runnerParams.ListSize),
		runner.WithRounds(runnerParams.Rounds),
		runner.WithWorkerCount(runnerParams.WorkerCount),
		runner.WithSeed(runnerParams.Seed),
		runner.WithMaxValue(runnerParams.MaxValue),
		runner.WithLogger(log.Named("Runner")),
	).Run(ctx)
	if err != nil {
		log.Errorf("run failed: %s", err)

		return err
	}

	log.Infof("verified %d of %d rounds with %d elements in %s", stats.VerifiedRounds.Load(), stats.Rounds.Load(), stats.Elements.Load(), time.Since(start).Truncate(time.Millisecond))

	return nil
}

// loadConfiguration merges the config file, the flags and the environment. Flags that were set explicitly win over
// environment variables, which win over the config file.
func loadConfiguration(args []string) (*configuration.Configuration, *ParametersRunner, error) {
	flagSet := configuration.NewUnsortedFlagSet("dllsort", flag.ContinueOnError)
	configFilePath := flagSet.StringP("config", "c", "", "path to a JSON or YAML config file")

	runnerParams := new(ParametersRunner)
	if err := configuration.BindParameters(flagSet, "runner", runnerParams); err != nil {
		return nil, nil, err
	}
	if err := configuration.BindParameters(flagSet, "logger", new(ParametersLogger)); err != nil {
		return nil, nil, err
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}

	config := configuration.New()
	if *configFilePath != "" {
		if err := config.LoadFile(*configFilePath); err != nil {
			return nil, nil, err
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, nil, ierrors.Wrap(err, "unable to load flags")
	}

	// the defaults of the flags must be loaded first, otherwise the keys of the env vars do not exist
	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, nil, ierrors.Wrap(err, "unable to load environment variables")
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, nil, ierrors.Wrap(err, "unable to load flags")
	}

	if err := config.Unmarshal("runner", runnerParams); err != nil {
		return nil, nil, err
	}

	return config, runnerParams, nil
}
