package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

// requestFlags are the per-request options shared by get and batch.
// Flags left unset fall back to the config defaults.
type requestFlags struct {
	language     string
	preferManual bool
	format       string
	metadata     bool
	cookiesFile  string
}

func (f *requestFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.language, "lang", "l", "", "Language code, e.g. en or en-US (default from config)")
	fs.BoolVar(&f.preferManual, "prefer-manual", true, "Prefer manual subtitles over automatic captions")
	fs.StringVarP(&f.format, "format", "f", "", "Transcript format: structured, plainText or both (default from config)")
	fs.BoolVar(&f.metadata, "metadata", false, "Include video metadata")
	fs.StringVar(&f.cookiesFile, "cookies", "", "Netscape cookies file for restricted videos")
}

// request builds the request for ref, applying flags that were set over the config defaults.
func (f *requestFlags) request(fs *pflag.FlagSet, cfg *config.Config, ref string) (models.TranscriptRequest, error) {
	req, err := configDefaults(cfg)
	if err != nil {
		return req, err
	}
	req.VideoRef = ref

	if fs.Changed("format") {
		if req.OutputFormat, err = models.ParseOutputFormat(f.format); err != nil {
			return req, err
		}
	}

	if fs.Changed("lang") {
		req.Language = models.LanguageCode(f.language)
	}
	if fs.Changed("prefer-manual") {
		req.PreferManual = f.preferManual
	}
	if fs.Changed("metadata") {
		req.IncludeMetadata = f.metadata
	}
	req.Auth.CookiesFile = f.cookiesFile

	return req.WithDefaults(), nil
}

// configDefaults is the request a caller gets without any option.
func configDefaults(cfg *config.Config) (models.TranscriptRequest, error) {
	format, err := models.ParseOutputFormat(cfg.Defaults.OutputFormat)
	if err != nil {
		return models.TranscriptRequest{}, fmt.Errorf("defaults.output_format: %w", err)
	}
	req := models.TranscriptRequest{
		Language:        models.LanguageCode(cfg.Defaults.Language),
		PreferManual:    cfg.Defaults.PreferManual,
		OutputFormat:    format,
		IncludeMetadata: cfg.Defaults.IncludeMetadata,
	}
	return req.WithDefaults(), nil
}

// outputFlags control where and how results are written.
type outputFlags struct {
	encoding  string
	outFile   string
	clipboard bool
}

func (f *outputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.encoding, "encoding", "e", encodingJSON, "Output encoding: json or yaml")
	fs.StringVarP(&f.outFile, "output", "o", "", "Write the output to this file instead of stdout")
	fs.BoolVar(&f.clipboard, "clipboard", false, "Copy the transcript text to the clipboard")
}
