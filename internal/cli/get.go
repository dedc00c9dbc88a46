package cli

import (
	"github.com/spf13/cobra"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
)

func newGetCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <video>",
		Short: "Print the transcript of one video",
		Example: `  ytranscript get dQw4w9WgXcQ
  ytranscript get "https://youtu.be/dQw4w9WgXcQ" --lang fr --format plainText
  ytranscript get dQw4w9WgXcQ --metadata -e yaml -o transcript.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runGet(cmd, args[0])
		},
	}
	s.request.register(cmd.Flags())
	s.output.register(cmd.Flags())
	return cmd
}

func (s *state) runGet(cmd *cobra.Command, ref string) error {
	if err := checkEncoding(s.output.encoding); err != nil {
		return err
	}
	req, err := s.request.request(cmd.Flags(), s.cfg, ref)
	if err != nil {
		return err
	}
	app, err := s.openApp()
	if err != nil {
		return err
	}

	result, err := app.Service.GetTranscript(cmd.Context(), req)
	if err != nil {
		reportError(err, ref)
		return err
	}

	data, err := encodeResult(s.output.encoding, result)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), s.output.outFile, data); err != nil {
		return err
	}

	if s.output.clipboard {
		if err := copyTranscripts(result); err != nil {
			return err
		}
		logger := config.GetLogger()
		logger.Info().Str("videoId", result.VideoID).Msg("Transcript copied to clipboard")
	}
	return nil
}
