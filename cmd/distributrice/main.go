package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"distributrice/internal/config"
	"distributrice/internal/logger"
	"distributrice/internal/vending/application"
)

// Usage: distributrice [refill | <breuvage> | dispense:<breuvage> ...]
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration:", err)
		return 1
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 1
	}
	defer log.Sync()

	machine, err := application.Build(cfg.Machine)
	if err != nil {
		log.Error("build machine", zap.Error(err))
		return 1
	}

	op := application.NewOperator(machine, log)
	op.Report()

	sum, err := op.Run(args)
	if err != nil {
		log.Error("run operations", zap.Error(err))
		if errors.Is(err, application.ErrUnknownOperation) {
			return 2
		}
		return 1
	}

	log.Info("operations done", zap.Int("applied", sum.Applied), zap.Int("failed", sum.Failed))
	op.Report()
	return 0
}
