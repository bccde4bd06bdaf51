package main

import (
	"fmt"
	"log"
	"os"

	"github.com/manish-107/CollegeCAT-sub000/pkg/config"
	appErrors "github.com/manish-107/CollegeCAT-sub000/pkg/errors"
	"github.com/manish-107/CollegeCAT-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	app := newApp(cfg, logr, os.Stdout)
	if err := app.run(os.Args[1:]); err != nil {
		appErr := appErrors.FromError(err)
		fmt.Fprintf(os.Stderr, "periodctl: %v\n", appErr)
		logr.Sugar().Debugw("command failed", "code", appErr.Code, "error", err)
		_ = logr.Sync()
		os.Exit(appErr.ExitCode)
	}
}
