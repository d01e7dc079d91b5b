package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bgdnvk/parley/internal/agent"
	"github.com/bgdnvk/parley/internal/agent/compose"
	"github.com/bgdnvk/parley/internal/browser"
	"github.com/bgdnvk/parley/internal/cli"
	"github.com/bgdnvk/parley/internal/logging"
	"github.com/bgdnvk/parley/internal/transcript"
	"github.com/bgdnvk/parley/internal/wiki"
)

// session bundles everything a command needs to run turns.
type session struct {
	agent   *agent.Agent
	console *cli.Console
	store   *transcript.Store
	logger  *zap.Logger
}

func newLogger() *zap.Logger {
	level := viper.GetString("log.level")
	if viper.GetBool("debug") {
		level = "debug"
	}
	return logging.Must(level, viper.GetString("log.format"))
}

// openTranscript returns nil when no transcript path is configured.
func openTranscript() (*transcript.Store, error) {
	path := viper.GetString("transcript.path")
	if path == "" {
		return nil, nil
	}
	store, err := transcript.Open(path, viper.GetInt("transcript.max_turns"))
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	return store, nil
}

func newLauncher(logger *zap.Logger) browser.Launcher {
	if viper.GetBool("browser.dry_run") {
		return &browser.DryRun{}
	}

	launcher := browser.NewSystemLauncher(viper.GetString("browser.command"), logger)
	if status := cli.NewDependencyChecker().CheckOpener(launcher.Command()); !status.Installed {
		logger.Warn("browser opener not found", zap.String("command", status.Name), zap.String("hint", status.Message))
	}
	return launcher
}

func newSession(cmd *cobra.Command) (*session, error) {
	logger := newLogger()
	console := cli.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

	store, err := openTranscript()
	if err != nil {
		return nil, err
	}

	encyclopedia := wiki.NewClientWithURL(wiki.ResolveBaseURL(""), viper.GetDuration("wiki.timeout"), logger)
	encyclopedia.SetUserAgent(viper.GetString("wiki.user_agent"))

	opts := agent.Options{
		Encyclopedia:  encyclopedia,
		Launcher:      newLauncher(logger),
		Input:         console,
		Output:        console.Out(),
		Picker:        compose.NewPicker(viper.GetUint64("seed")),
		TemplatePath:  viper.GetString("story.template_path"),
		SummaryLength: wiki.ResolveSummaryLength(),
		SessionID:     uuid.NewString(),
		Logger:        logger,
	}
	if store != nil {
		opts.Recorder = store
	}

	logger.Debug("session started",
		zap.String("session", opts.SessionID),
		zap.Bool("transcript", store != nil),
		zap.String("template", opts.TemplatePath),
	)

	return &session{
		agent:   agent.New(opts),
		console: console,
		store:   store,
		logger:  logger,
	}, nil
}

func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("failed to close transcript", zap.Error(err))
		}
	}
	_ = s.logger.Sync()
}
