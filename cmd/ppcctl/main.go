package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pterm/pterm"

	"ppc-optimizer/internal/adapter/cli"
	"ppc-optimizer/internal/adapter/filestore"
	"ppc-optimizer/internal/adapter/spreadsheet"
	"ppc-optimizer/internal/adapter/usecase"
	"ppc-optimizer/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	// the CLI reports through pterm; only warnings are logged unless asked
	if _, ok := os.LookupEnv("LOG_LEVEL"); !ok {
		cfg.Log.Level = "warn"
	}
	logger := cfg.Log.New(os.Stderr)

	cfg.Upload.Dir = filepath.Join(os.TempDir(), "ppcctl")
	store, err := filestore.New(cfg.Upload)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	svc := usecase.NewPPCUseCase(store, spreadsheet.NewReader(), cfg.Upload, logger)
	app := cli.NewCLIApp(svc, version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = app.Command().ExecuteContext(ctx)
	stop()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
