package ytdlp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/Belphemur/YouTubeTranscript/internal/apperrors"
	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/metrics"
)

// BinaryName is looked up in PATH when no explicit path is configured.
const BinaryName = "yt-dlp"

// Options configures how yt-dlp is located and invoked.
type Options struct {
	Path        string        // Explicit binary path; empty means PATH lookup
	Timeout     time.Duration // Upper bound of a single invocation; 0 disables it
	TempDir     string        // Parent of per-download work directories; empty means os.TempDir()
	CookiesFile string        // Used when a request carries no cookies of its own
	SubFormat   string        // Value of --sub-format
}

// Runner resolves the yt-dlp binary once and executes it under a timeout policy.
type Runner struct {
	opts Options

	resolveOnce sync.Once
	binary      string
	resolveErr  error
}

// NewRunner creates a runner. The binary is resolved on first use.
func NewRunner(opts Options) *Runner {
	return &Runner{opts: opts}
}

// NewRunnerFromConfig builds a runner from the ytdlp section of cfg.
func NewRunnerFromConfig(cfg *config.Config) *Runner {
	return NewRunner(Options{
		Path:        cfg.YtDlp.Path,
		Timeout:     config.ParseDuration("ytdlp.timeout", cfg.YtDlp.Timeout, 2*time.Minute),
		TempDir:     cfg.YtDlp.TempDir,
		CookiesFile: cfg.YtDlp.CookiesFile,
		SubFormat:   cfg.YtDlp.SubFormat,
	})
}

// Binary returns the resolved executable path.
func (r *Runner) Binary() (string, error) {
	r.resolveOnce.Do(func() {
		r.binary, r.resolveErr = resolveBinary(r.opts.Path)
	})
	return r.binary, r.resolveErr
}

func resolveBinary(configured string) (string, error) {
	if configured == "" {
		path, err := exec.LookPath(BinaryName)
		if err != nil {
			return "", apperrors.NewToolNotFoundError(BinaryName, "", err)
		}
		return path, nil
	}

	info, err := os.Stat(configured)
	if err != nil {
		return "", apperrors.NewToolNotFoundError(BinaryName, configured, err)
	}
	if info.IsDir() {
		return "", apperrors.NewToolNotFoundError(BinaryName, configured, fmt.Errorf("%s is a directory", configured))
	}
	return configured, nil
}

// Run executes yt-dlp with args and returns its standard output.
// operation labels the invocation in logs and metrics.
func (r *Runner) Run(ctx context.Context, operation string, args []string) ([]byte, error) {
	logger := config.GetLogger()

	binary, err := r.Binary()
	if err != nil {
		metrics.DownloaderDuration.WithLabelValues(operation, "tool_not_found").Observe(0)
		return nil, err
	}

	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Strs("args", args).
		Msg("Running yt-dlp")

	var out []byte
	if r.opts.Timeout > 0 {
		policy := timeout.New[[]byte](r.opts.Timeout)
		out, err = failsafe.With(policy).GetWithExecution(func(execution failsafe.Execution[[]byte]) ([]byte, error) {
			runCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			go func() {
				select {
				case <-execution.Canceled():
					cancel()
				case <-runCtx.Done():
				}
			}()
			return execute(runCtx, binary, args)
		})
		if errors.Is(err, timeout.ErrExceeded) {
			err = fmt.Errorf("yt-dlp %s timed out after %s: %w", operation, r.opts.Timeout, err)
		}
	} else {
		out, err = execute(ctx, binary, args)
	}

	status := "success"
	if err != nil {
		status = "error"
		if startFailed(err, binary) {
			status = "tool_not_found"
			err = apperrors.NewToolNotFoundError(BinaryName, r.opts.Path, err)
		}
	}
	elapsed := time.Since(start)
	metrics.DownloaderDuration.WithLabelValues(operation, status).Observe(elapsed.Seconds())

	if err != nil {
		logger.Warn().Err(err).Str("operation", operation).Dur("elapsed", elapsed).Msg("yt-dlp failed")
		return nil, err
	}
	logger.Debug().Str("operation", operation).Dur("elapsed", elapsed).Int("bytes", len(out)).Msg("yt-dlp finished")
	return out, nil
}

// startFailed reports whether err means binary itself could not be started,
// e.g. it was removed after resolution. Failures of the run itself do not count.
func startFailed(err error, binary string) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) && pathErr.Path == binary && errors.Is(pathErr.Err, fs.ErrNotExist)
}

// execute runs the binary, keeping stderr for the error message.
func execute(ctx context.Context, binary string, args []string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Children left behind by a killed yt-dlp must not hold Wait open
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("yt-dlp interrupted: %w", ctxErr)
		}
		if msg := lastErrorLine(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w", msg, err)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// lastErrorLine prefers the last "ERROR:" line of yt-dlp's stderr, else its last non-blank line.
func lastErrorLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); strings.HasPrefix(line, "ERROR:") {
			return line
		}
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
