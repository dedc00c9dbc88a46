package ytdlp

import (
	"reflect"
	"testing"
)

func TestArgsBuilder_Metadata(t *testing.T) {
	t.Parallel()
	got := NewArgsBuilder().NoConfig().DumpJSON().SkipDownload().Quiet().Cookies("").URL("https://youtu.be/abc").Build()
	want := []string{"--no-config", "--dump-json", "--skip-download", "--no-warnings", "--no-progress", "--", "https://youtu.be/abc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

func TestArgsBuilder_Subtitles(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		manual bool
		want   []string
	}{
		{"manual", true, []string{"--write-subs", "--sub-langs", "en_US", "--sub-format", "vtt", "-o", "/tmp/x/subtitle.%(ext)s", "--cookies", "c.txt"}},
		{"automatic", false, []string{"--write-auto-subs", "--sub-langs", "en_US", "--sub-format", "vtt", "-o", "/tmp/x/subtitle.%(ext)s", "--cookies", "c.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewArgsBuilder().
				Subtitles(tt.manual, "en_US").
				SubFormat("vtt").
				Output("/tmp/x/subtitle.%(ext)s").
				Cookies("c.txt").
				Build()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Build() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArgsBuilder_EmptySubFormatOmitted(t *testing.T) {
	t.Parallel()
	if got := NewArgsBuilder().SubFormat("").Build(); len(got) != 0 {
		t.Errorf("Expected no args, got %v", got)
	}
}
