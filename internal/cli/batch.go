package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Belphemur/YouTubeTranscript/internal/models"
	"github.com/Belphemur/YouTubeTranscript/internal/services"
)

type batchFlags struct {
	file              string
	concurrency       int
	continueOnFailure bool
	quiet             bool
}

func newBatchCmd(s *state) *cobra.Command {
	var flags batchFlags
	cmd := &cobra.Command{
		Use:   "batch [video...]",
		Short: "Extract the transcripts of several videos",
		Long: `Extract the transcripts of several videos given as arguments and/or
read from a file (one URL or ID per line, # starts a comment, - reads stdin).

Items are written in input order. Without --continue-on-failure the first
failure stops the batch.`,
		Example: `  ytranscript batch dQw4w9WgXcQ 9bZkp7q19f0
  ytranscript batch --file videos.txt --concurrency 4 --continue-on-failure -o out.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runBatch(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.file, "file", "", "File with one video URL or ID per line, - for stdin")
	cmd.Flags().IntVarP(&flags.concurrency, "concurrency", "c", 1, "Number of videos processed at once")
	cmd.Flags().BoolVar(&flags.continueOnFailure, "continue-on-failure", false, "Record failures and keep going")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Do not print the summary")
	s.request.register(cmd.Flags())
	s.output.register(cmd.Flags())
	return cmd
}

func (s *state) runBatch(cmd *cobra.Command, args []string, flags batchFlags) error {
	if err := checkEncoding(s.output.encoding); err != nil {
		return err
	}
	refs, err := collectRefs(args, flags.file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return errors.New("no video given, pass references as arguments or with --file")
	}

	reqs := make([]models.TranscriptRequest, len(refs))
	for i, ref := range refs {
		if reqs[i], err = s.request.request(cmd.Flags(), s.cfg, ref); err != nil {
			return err
		}
	}

	app, err := s.openApp()
	if err != nil {
		return err
	}

	processor := services.NewBatchProcessor(app.Service, services.BatchOptions{
		ContinueOnFailure: flags.continueOnFailure,
		Concurrency:       flags.concurrency,
		OnError:           func(videoRef string, err error) { reportError(err, videoRef) },
	})

	start := time.Now()
	items, err := processor.ProcessBatch(cmd.Context(), reqs)
	if err != nil {
		return err
	}

	data, err := encodeBatch(s.output.encoding, items)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), s.output.outFile, data); err != nil {
		return err
	}

	if s.output.clipboard {
		results := make([]*models.TranscriptResult, len(items))
		for i, item := range items {
			results[i] = item.Result
		}
		if err := copyTranscripts(results...); err != nil {
			return err
		}
	}

	if !flags.quiet {
		if _, err := fmt.Fprint(cmd.ErrOrStderr(), renderSummary(items, time.Since(start))); err != nil {
			return err
		}
	}
	return nil
}
