package grpc

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
	"github.com/Belphemur/YouTubeTranscript/internal/services"
	"github.com/Belphemur/YouTubeTranscript/internal/telemetry"
)

// server implements the TranscriptServiceServer interface
type server struct {
	service  services.TranscriptService
	defaults models.TranscriptRequest
	logger   zerolog.Logger
}

// NewServer creates a new gRPC server instance.
// defaults supplies the options a request document leaves out.
func NewServer(svc services.TranscriptService, defaults models.TranscriptRequest) TranscriptServiceServer {
	return &server{
		service:  svc,
		defaults: defaults.WithDefaults(),
		logger:   config.GetLogger(),
	}
}

// GetTranscript implements TranscriptServiceServer.GetTranscript
func (s *server) GetTranscript(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := convertTranscriptRequest(in, s.defaults)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	s.logger.Debug().Str("videoRef", req.VideoRef).Str("language", string(req.Language)).Msg("GetTranscript called")

	result, err := s.service.GetTranscript(ctx, req)
	if err != nil {
		st := convertErrorToStatus(err)
		s.report(err, st, req.VideoRef)
		return nil, st
	}

	out, err := convertResultToProto(result)
	if err != nil {
		s.logger.Error().Err(err).Str("videoRef", req.VideoRef).Msg("Failed to convert transcript result")
		return nil, status.Errorf(codes.Internal, "failed to convert transcript result: %v", err)
	}

	s.logger.Debug().Str("videoId", result.VideoID).Int("items", result.ItemCount).Msg("GetTranscript completed")
	return out, nil
}

// StreamTranscripts implements TranscriptServiceServer.StreamTranscripts
func (s *server) StreamTranscripts(in *structpb.Struct, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	reqs, opts, err := convertStreamRequest(in, s.defaults)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	opts.OnError = func(videoRef string, err error) {
		s.report(err, convertErrorToStatus(err), videoRef)
	}
	s.logger.Debug().Int("items", len(reqs)).Int("concurrency", opts.Concurrency).Msg("StreamTranscripts called")

	ctx := stream.Context()
	processor := services.NewBatchProcessor(s.service, opts)
	sent := 0
	for result := range processor.StreamTranscripts(ctx, reqs) {
		if result.Err != nil {
			return convertErrorToStatus(result.Err)
		}

		out, err := convertBatchItemToProto(result.Value)
		if err != nil {
			s.logger.Error().Err(err).Str("videoRef", result.Value.VideoRef).Msg("Failed to convert batch item")
			return status.Errorf(codes.Internal, "failed to convert batch item: %v", err)
		}
		if err := stream.Send(out); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to send batch item, client gone")
			return err
		}
		sent++
	}

	if err := ctx.Err(); err != nil {
		return convertErrorToStatus(err)
	}
	s.logger.Debug().Int("sent", sent).Msg("StreamTranscripts completed")
	return nil
}

// report logs a failed request and forwards unexpected failures to error reporting.
func (s *server) report(err, st error, videoRef string) {
	code := status.Code(st)
	switch code {
	case codes.Internal, codes.Unavailable, codes.FailedPrecondition:
		s.logger.Error().Err(err).Str("videoRef", videoRef).Str("code", code.String()).Msg("Transcript request failed")
		telemetry.CaptureError(err, map[string]string{"videoRef": videoRef, "code": code.String()})
	default:
		s.logger.Debug().Err(err).Str("videoRef", videoRef).Str("code", code.String()).Msg("Transcript request rejected")
	}
}
