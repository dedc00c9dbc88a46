package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Belphemur/YouTubeTranscript/internal/apperrors"
	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/telemetry"
)

// state is shared by the commands of one invocation.
type state struct {
	version    string
	configPath string
	cfg        *config.Config
	app        *App
	flush      func()

	// newApp builds the service graph; tests replace it with fakes.
	newApp func(*config.Config) (*App, error)

	request requestFlags
	output  outputFlags
}

func newState(version string) *state {
	return &state{version: version, newApp: NewApp}
}

// setup loads the configuration and error reporting. It runs before every command.
func (s *state) setup() error {
	if s.cfg != nil {
		return nil
	}
	if s.configPath != "" {
		config.SetConfigFile(s.configPath)
	}
	s.cfg = config.GetConfig()

	flush, err := telemetry.Init(s.cfg, s.version)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Msg("Invalid Sentry configuration, error reporting disabled")
	}
	s.flush = flush
	return nil
}

// openApp wires the service graph on first use.
func (s *state) openApp() (*App, error) {
	if s.app != nil {
		return s.app, nil
	}
	app, err := s.newApp(s.cfg)
	if err != nil {
		return nil, err
	}
	s.app = app
	return app, nil
}

func (s *state) close() {
	if s.app != nil {
		if err := s.app.Close(); err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Msg("Failed to release resources")
		}
		s.app = nil
	}
	if s.flush != nil {
		s.flush()
	}
}

// NewRootCmd creates the ytranscript command tree.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(newState(version))
}

func newRootCmd(s *state) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ytranscript [video]",
		Short: "Extract YouTube transcripts",
		Long: `ytranscript extracts the transcript of a YouTube video through yt-dlp.

Give a video URL or ID to print its transcript, same as "ytranscript get".
Use "batch" for many videos and "serve" to expose the gRPC API.`,
		Version:       s.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return s.runGet(cmd, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.configPath, "config", "", "Config file (default ./config.yaml or ./config/config.yaml)")
	s.request.register(rootCmd.Flags())
	s.output.register(rootCmd.Flags())

	rootCmd.AddCommand(newGetCmd(s))
	rootCmd.AddCommand(newBatchCmd(s))
	rootCmd.AddCommand(newServeCmd(s))

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := newState(version)
	rootCmd := newRootCmd(s)
	defer s.close()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Command failed")
		return 1
	}
	return 0
}

// reportError forwards failures that point at a bug or a broken setup to error reporting.
// Rejected input, missing languages and interruptions are expected outcomes.
func reportError(err error, videoRef string) {
	switch {
	case errors.Is(err, &apperrors.ErrInvalidInput{}),
		errors.Is(err, &apperrors.ErrNoMatchingTranscript{}),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return
	}
	telemetry.CaptureError(err, map[string]string{"videoRef": videoRef})
}
