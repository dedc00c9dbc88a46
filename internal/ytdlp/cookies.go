package ytdlp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

// cookiesFor returns the cookies file to pass to yt-dlp and a cleanup func that is always safe to call.
// Precedence: the request's file, the request's inline text (written to dir), the configured default.
func cookiesFor(auth models.AuthContext, fallback, dir string) (string, func(), error) {
	noop := func() {}
	switch {
	case auth.CookiesFile != "":
		return auth.CookiesFile, noop, nil
	case auth.CookiesText != "":
		path := filepath.Join(dir, "cookies-"+uuid.NewString()+".txt")
		if err := os.WriteFile(path, []byte(auth.CookiesText), 0o600); err != nil {
			return "", noop, fmt.Errorf("failed to write cookies file: %w", err)
		}
		return path, func() { removeQuietly(path) }, nil
	default:
		return fallback, noop, nil
	}
}

// removeQuietly deletes path; a failure is logged and never propagated.
func removeQuietly(path string) {
	if err := os.RemoveAll(path); err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("path", path).Msg("Failed to clean up temporary file")
	}
}
