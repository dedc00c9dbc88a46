package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

const (
	encodingJSON = "json"
	encodingYAML = "yaml"
)

// clipboardWriteAll is swapped in tests; CI machines rarely have a clipboard.
var clipboardWriteAll = clipboard.WriteAll

func checkEncoding(encoding string) error {
	switch encoding {
	case encodingJSON, encodingYAML:
		return nil
	default:
		return fmt.Errorf("unknown encoding %q (expected json or yaml)", encoding)
	}
}

// encodeResult renders one result. JSON keeps the field order of the result type.
func encodeResult(encoding string, result *models.TranscriptResult) ([]byte, error) {
	if encoding == encodingYAML {
		return yaml.Marshal(result.ToMap())
	}
	return json.MarshalIndent(result, "", "  ")
}

// encodeBatch renders batch items in input order.
func encodeBatch(encoding string, items []models.BatchItem) ([]byte, error) {
	if encoding != encodingYAML {
		return json.MarshalIndent(items, "", "  ")
	}

	docs := make([]map[string]any, len(items))
	for i, item := range items {
		doc := map[string]any{"videoRef": item.VideoRef}
		if item.Result != nil {
			doc["result"] = item.Result.ToMap()
		} else {
			doc["error"] = item.Error
		}
		docs[i] = doc
	}
	return yaml.Marshal(docs)
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger := config.GetLogger()
	logger.Info().Str("path", path).Int("bytes", len(data)).Msg("Output written")
	return nil
}

// transcriptText is the plain text of a result whatever its format.
func transcriptText(result *models.TranscriptResult) string {
	if result.TranscriptText != nil {
		return *result.TranscriptText
	}
	return models.JoinText(result.Transcript)
}

// copyTranscripts puts the text of every successful result on the clipboard, one per paragraph.
func copyTranscripts(results ...*models.TranscriptResult) error {
	parts := make([]string, 0, len(results))
	for _, result := range results {
		if result == nil {
			continue
		}
		if text := transcriptText(result); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return errors.New("no transcript text to copy")
	}
	if err := clipboardWriteAll(strings.Join(parts, "\n\n")); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
