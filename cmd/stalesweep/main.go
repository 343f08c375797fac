package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/ericfisherdev/stalesweep/internal/adapter/driven/github"
	sqliteadapter "github.com/ericfisherdev/stalesweep/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/stalesweep/internal/application"
	"github.com/ericfisherdev/stalesweep/internal/config"
	"github.com/ericfisherdev/stalesweep/internal/domain/port/driven"
	"github.com/ericfisherdev/stalesweep/internal/input"
	"github.com/ericfisherdev/stalesweep/internal/options"
)

func main() {
	if err := run(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load run context (fail fast on missing repository).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("run context loaded",
		"repo", cfg.Repo.FullName(),
		"db_path", cfg.DBPath,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Resolve options: defaults, then named inputs, then JSON overrides.
	src := input.ActionsSource{}
	opts := options.Merge(
		options.Defaults(),
		options.FromInputs(src),
		options.FromJSON(src.Get("config-overrides")),
	)
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.RepoToken == "" {
		return fmt.Errorf("input %q is required", "repo-token")
	}

	// 4. Compile the operator's filter terms against the run's repository.
	opts.OnlyMatchingFilter = options.CompileFilters(cfg.Repo, opts.OnlyMatchingFilter)
	slog.Debug("options resolved", "options", opts.Resolved())

	// 5. Open the state database and run migrations.
	db, err := sqliteadapter.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	if err := sqliteadapter.RunMigrations(db.Conn); err != nil {
		return err
	}
	stateStore := sqliteadapter.NewStateRepo(db)

	// 6. Wire the GitHub adapter; debug-only runs mutate nothing.
	ghClient := githubadapter.NewClient(opts.RepoToken)
	var mutator driven.GitHubMutator = ghClient
	if opts.DebugOnly != nil && *opts.DebugOnly {
		slog.Info("debug-only mode, no mutations will be sent")
		mutator = application.NoopMutator{}
	}

	logRateLimitSnapshot(ctx, ghClient, "before")

	// 7. Run the processor.
	svc := application.NewStaleService(ghClient, mutator, stateStore, cfg.Repo, opts)
	result, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	logRateLimitSnapshot(ctx, ghClient, "after")

	// 8. Publish outputs.
	if err := application.WriteRunOutputs(cfg.OutputPath, result); err != nil {
		return err
	}

	slog.Info("run complete",
		"staled", len(result.StaleItems),
		"closed", len(result.ClosedItems),
	)
	return nil
}

// logRateLimitSnapshot logs the core rate limit before and after the
// processor runs. Failures here are informational only.
func logRateLimitSnapshot(ctx context.Context, client driven.GitHubClient, phase string) {
	rl, err := client.RateLimit(ctx)
	if err != nil {
		slog.Warn("rate limit snapshot unavailable", "phase", phase, "error", err)
		return
	}
	slog.Info("rate limit snapshot",
		"phase", phase,
		"limit", rl.Limit,
		"remaining", rl.Remaining,
		"reset", rl.Reset,
	)
}
