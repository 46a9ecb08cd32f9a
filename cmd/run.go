package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/hoehwa/internal/app"
	"github.com/abhisek/hoehwa/internal/config"
	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/llm"
	"github.com/abhisek/hoehwa/internal/logging"
	"github.com/abhisek/hoehwa/internal/session"
	"github.com/abhisek/hoehwa/internal/store"
)

// runtime bundles the dependencies shared by the commands that call the model.
type runtime struct {
	cfg        *config.Config
	logger     *zap.Logger
	store      *store.Store
	provider   llm.Provider
	controller *session.Controller
}

// loadConfig reads configuration honoring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// newRuntime loads configuration, checks credentials, opens the event
// store and builds the provider chain. logFile overrides log.file when
// the configuration leaves it empty.
func newRuntime(ctx context.Context, cmd *cobra.Command, logFile string) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireCredentials(); err != nil {
		return nil, err
	}

	logCfg := cfg.Log
	if logCfg.File == "" {
		logCfg.File = logFile
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo(), logger)
	if err != nil {
		st.Close()
		return nil, err
	}

	gen := convgen.New(provider, cfg.Generation)
	logger.Info("runtime ready",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", provider.ModelID()),
		zap.String("db", dbPath))

	return &runtime{
		cfg:        cfg,
		logger:     logger,
		store:      st,
		provider:   provider,
		controller: session.NewController(gen, logger),
	}, nil
}

func (r *runtime) Close() {
	_ = r.logger.Sync()
	r.store.Close()
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := newRuntime(cmd.Context(), cmd, logging.DefaultFile())
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.Run(app.Options{
		Controller: rt.controller,
		State:      session.NewState(),
		ExportDir:  rt.cfg.Export.Dir,
		Logger:     rt.logger,
	})
}
