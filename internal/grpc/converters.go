package grpc

import (
	"context"
	"errors"
	"fmt"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/YouTubeTranscript/internal/apperrors"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
	"github.com/Belphemur/YouTubeTranscript/internal/services"
)

// Request keys.
const (
	keyVideoRef          = "videoRef"
	keyVideoRefs         = "videoRefs"
	keyLanguage          = "language"
	keyPreferManual      = "preferManual"
	keyOutputFormat      = "outputFormat"
	keyIncludeMetadata   = "includeMetadata"
	keyCookiesText       = "cookiesText"
	keyContinueOnFailure = "continueOnFailure"
	keyConcurrency       = "concurrency"
)

// maxStreamConcurrency caps the concurrency a caller may ask for.
const maxStreamConcurrency = 16

func stringField(s *structpb.Struct, key string) (string, bool, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return "", false, nil
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", false, fmt.Errorf("field %q must be a string", key)
	}
	return sv.StringValue, true, nil
}

func boolField(s *structpb.Struct, key string) (bool, bool, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return false, false, nil
	}
	bv, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, false, fmt.Errorf("field %q must be a boolean", key)
	}
	return bv.BoolValue, true, nil
}

func intField(s *structpb.Struct, key string) (int, bool, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, false, nil
	}
	nv, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || nv.NumberValue != math.Trunc(nv.NumberValue) {
		return 0, false, fmt.Errorf("field %q must be an integer", key)
	}
	return int(nv.NumberValue), true, nil
}

// convertRequestOptions reads the per-request options over defaults.
// Cookies files are server paths and are not accepted from remote callers.
func convertRequestOptions(s *structpb.Struct, defaults models.TranscriptRequest) (models.TranscriptRequest, error) {
	req := defaults
	req.VideoRef = ""
	req.Auth = models.AuthContext{}

	if lang, ok, err := stringField(s, keyLanguage); err != nil {
		return req, err
	} else if ok {
		req.Language = models.LanguageCode(lang)
	}
	if prefer, ok, err := boolField(s, keyPreferManual); err != nil {
		return req, err
	} else if ok {
		req.PreferManual = prefer
	}
	if format, ok, err := stringField(s, keyOutputFormat); err != nil {
		return req, err
	} else if ok {
		parsed, err := models.ParseOutputFormat(format)
		if err != nil {
			return req, err
		}
		req.OutputFormat = parsed
	}
	if include, ok, err := boolField(s, keyIncludeMetadata); err != nil {
		return req, err
	} else if ok {
		req.IncludeMetadata = include
	}
	cookies, _, err := stringField(s, keyCookiesText)
	if err != nil {
		return req, err
	}
	req.Auth.CookiesText = cookies
	return req, nil
}

// convertTranscriptRequest converts a GetTranscript request document.
func convertTranscriptRequest(s *structpb.Struct, defaults models.TranscriptRequest) (models.TranscriptRequest, error) {
	req, err := convertRequestOptions(s, defaults)
	if err != nil {
		return req, err
	}
	ref, _, err := stringField(s, keyVideoRef)
	if err != nil {
		return req, err
	}
	req.VideoRef = ref
	return req, nil
}

// convertStreamRequest converts a StreamTranscripts request document into one request per video
// and the batch options it asks for.
func convertStreamRequest(s *structpb.Struct, defaults models.TranscriptRequest) ([]models.TranscriptRequest, services.BatchOptions, error) {
	var opts services.BatchOptions

	base, err := convertRequestOptions(s, defaults)
	if err != nil {
		return nil, opts, err
	}

	v, ok := s.GetFields()[keyVideoRefs]
	if !ok {
		return nil, opts, fmt.Errorf("field %q is required", keyVideoRefs)
	}
	list, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, opts, fmt.Errorf("field %q must be a list of strings", keyVideoRefs)
	}

	reqs := make([]models.TranscriptRequest, 0, len(list.ListValue.GetValues()))
	for i, item := range list.ListValue.GetValues() {
		ref, ok := item.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, opts, fmt.Errorf("%s[%d] must be a string", keyVideoRefs, i)
		}
		req := base
		req.VideoRef = ref.StringValue
		reqs = append(reqs, req)
	}

	opts.ContinueOnFailure, _, err = boolField(s, keyContinueOnFailure)
	if err != nil {
		return nil, opts, err
	}
	concurrency, ok, err := intField(s, keyConcurrency)
	if err != nil {
		return nil, opts, err
	}
	if !ok {
		concurrency = 1
	}
	opts.Concurrency = min(max(concurrency, 1), maxStreamConcurrency)

	return reqs, opts, nil
}

// convertResultToProto converts a result to its document form.
func convertResultToProto(result *models.TranscriptResult) (*structpb.Struct, error) {
	return structpb.NewStruct(result.ToMap())
}

// convertBatchItemToProto converts one batch item. Exactly one of result and error is set.
func convertBatchItemToProto(item models.BatchItem) (*structpb.Struct, error) {
	m := map[string]any{
		"index":     int64(item.Index),
		keyVideoRef: item.VideoRef,
	}
	if item.Result != nil {
		m["result"] = item.Result.ToMap()
	} else {
		m["error"] = item.Error
	}
	return structpb.NewStruct(m)
}

// convertErrorToStatus maps domain errors to gRPC status codes.
func convertErrorToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := codes.Internal
	switch {
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, &apperrors.ErrInvalidInput{}):
		code = codes.InvalidArgument
	case errors.Is(err, &apperrors.ErrToolNotFound{}):
		code = codes.FailedPrecondition
	case errors.Is(err, &apperrors.ErrNoMatchingTranscript{}),
		errors.Is(err, &apperrors.ErrSubtitleResourceNotFound{}):
		code = codes.NotFound
	case errors.Is(err, &apperrors.ErrMetadataFetch{}):
		code = codes.Unavailable
	}
	return status.Error(code, err.Error())
}
