package ytdlp

import "strings"

// ArgsBuilder assembles a yt-dlp command line.
type ArgsBuilder struct {
	args []string
}

func NewArgsBuilder() *ArgsBuilder { return &ArgsBuilder{} }

// NoConfig ignores user and system yt-dlp config files so runs are predictable.
func (b *ArgsBuilder) NoConfig() *ArgsBuilder {
	b.args = append(b.args, "--no-config")
	return b
}

func (b *ArgsBuilder) DumpJSON() *ArgsBuilder {
	b.args = append(b.args, "--dump-json")
	return b
}

func (b *ArgsBuilder) SkipDownload() *ArgsBuilder {
	b.args = append(b.args, "--skip-download")
	return b
}

func (b *ArgsBuilder) Quiet() *ArgsBuilder {
	b.args = append(b.args, "--no-warnings", "--no-progress")
	return b
}

// Cookies adds a Netscape cookies file. An empty path is ignored.
func (b *ArgsBuilder) Cookies(path string) *ArgsBuilder {
	if path != "" {
		b.args = append(b.args, "--cookies", path)
	}
	return b
}

// Subtitles asks for manual subtitles or automatic captions in the given languages.
func (b *ArgsBuilder) Subtitles(manual bool, langs ...string) *ArgsBuilder {
	if manual {
		b.args = append(b.args, "--write-subs")
	} else {
		b.args = append(b.args, "--write-auto-subs")
	}
	b.args = append(b.args, "--sub-langs", strings.Join(langs, ","))
	return b
}

// SubFormat sets the preferred subtitle format, e.g. "vtt" or "vtt/srt/best".
func (b *ArgsBuilder) SubFormat(format string) *ArgsBuilder {
	if format != "" {
		b.args = append(b.args, "--sub-format", format)
	}
	return b
}

func (b *ArgsBuilder) Output(template string) *ArgsBuilder {
	b.args = append(b.args, "-o", template)
	return b
}

// URL ends the option list; the URL is always passed after "--" so it is never read as a flag.
func (b *ArgsBuilder) URL(url string) *ArgsBuilder {
	b.args = append(b.args, "--", url)
	return b
}

func (b *ArgsBuilder) Build() []string {
	return b.args
}
