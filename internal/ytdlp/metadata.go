package ytdlp

import (
	"context"
	"os"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
	"github.com/Belphemur/YouTubeTranscript/internal/parser"
)

// MetadataProvider describes videos with `yt-dlp --dump-json`.
type MetadataProvider struct {
	runner *Runner
}

func NewMetadataProvider(runner *Runner) *MetadataProvider {
	return &MetadataProvider{runner: runner}
}

// FetchMetadata returns the subtitle track maps and metadata of the video at url.
func (p *MetadataProvider) FetchMetadata(ctx context.Context, url string, auth models.AuthContext) (*models.VideoInfo, error) {
	cookies, cleanup, err := cookiesFor(auth, p.runner.opts.CookiesFile, tempBase(p.runner.opts.TempDir))
	if err != nil {
		return nil, err
	}
	defer cleanup()

	args := NewArgsBuilder().
		NoConfig().
		DumpJSON().
		SkipDownload().
		Quiet().
		Cookies(cookies).
		URL(url).
		Build()

	out, err := p.runner.Run(ctx, "metadata", args)
	if err != nil {
		return nil, err
	}

	info, err := parser.ParseVideoInfo(out)
	if err != nil {
		return nil, err
	}

	logger := config.GetLogger()
	logger.Debug().
		Str("url", url).
		Str("videoID", info.ID).
		Int("manualTracks", len(info.ManualTracks)).
		Int("autoTracks", len(info.AutoTracks)).
		Msg("Video metadata fetched")
	return info, nil
}

func tempBase(dir string) string {
	if dir != "" {
		return dir
	}
	return os.TempDir()
}
