package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Belphemur/YouTubeTranscript/internal/apperrors"
	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
	"github.com/Belphemur/YouTubeTranscript/internal/parser"
)

const outputStem = "subtitle"

// Suffixes under which yt-dlp may have written the requested language, and the extensions we can parse.
var (
	fileLanguageSuffixes = []string{"", "_US", "-US"}
	fileExtensions       = []string{"vtt", "srt"}
)

// SubtitleFetcher downloads a single subtitle track with yt-dlp into a throwaway directory.
type SubtitleFetcher struct {
	runner *Runner
}

func NewSubtitleFetcher(runner *Runner) *SubtitleFetcher {
	return &SubtitleFetcher{runner: runner}
}

// FetchSubtitleText downloads the track described by req and returns its decoded text.
func (f *SubtitleFetcher) FetchSubtitleText(ctx context.Context, req models.SubtitleRequest) (string, error) {
	logger := config.GetLogger()

	workDir := filepath.Join(tempBase(f.runner.opts.TempDir), "ytranscript-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create work directory: %w", err)
	}
	defer removeQuietly(workDir)

	cookies, cleanup, err := cookiesFor(req.Auth, f.runner.opts.CookiesFile, workDir)
	if err != nil {
		return "", err
	}
	defer cleanup()

	args := NewArgsBuilder().
		NoConfig().
		SkipDownload().
		Quiet().
		Subtitles(req.IsManual, string(req.Language)).
		SubFormat(f.runner.opts.SubFormat).
		Output(filepath.Join(workDir, outputStem+".%(ext)s")).
		Cookies(cookies).
		URL(req.URL).
		Build()

	if _, err := f.runner.Run(ctx, "subtitles", args); err != nil {
		return "", err
	}

	path, err := findSubtitleFile(workDir, req.Language)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read subtitle file: %w", err)
	}

	logger.Debug().
		Str("file", filepath.Base(path)).
		Int("size", len(data)).
		Msg("Subtitle file downloaded")
	// yt-dlp writes subtitle files as UTF-8
	return parser.DecodeUTF8(data)
}

// findSubtitleFile looks for <stem>.<lang><suffix>.<ext> in dir.
func findSubtitleFile(dir string, lang models.LanguageCode) (string, error) {
	searched := make([]string, 0, len(fileLanguageSuffixes)*len(fileExtensions))
	for _, suffix := range fileLanguageSuffixes {
		for _, ext := range fileExtensions {
			name := fmt.Sprintf("%s.%s%s.%s", outputStem, lang, suffix, ext)
			searched = append(searched, name)

			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("failed to inspect %s: %w", name, err)
			}
		}
	}
	return "", &apperrors.ErrSubtitleFileNotFound{Language: string(lang), Searched: searched, Written: writtenFiles(dir)}
}

// writtenFiles lists the subtitle files yt-dlp left in dir, so an unsupported format shows up in the error.
func writtenFiles(dir string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, outputStem+".*"))
	if err != nil {
		return nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = filepath.Base(m)
	}
	if len(names) > 0 {
		logger := config.GetLogger()
		logger.Warn().Strs("files", names).Msg("yt-dlp wrote no vtt or srt subtitle")
	}
	return names
}
