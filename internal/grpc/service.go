package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name, also used for health checks.
const ServiceName = "ytranscript.v1.TranscriptService"

const (
	getTranscriptMethod     = "/" + ServiceName + "/GetTranscript"
	streamTranscriptsMethod = "/" + ServiceName + "/StreamTranscripts"
)

// TranscriptServiceServer is the server API of the transcript service.
// Messages are google.protobuf.Struct documents with the same keys as the JSON output.
type TranscriptServiceServer interface {
	// GetTranscript extracts one transcript.
	GetTranscript(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// StreamTranscripts extracts the transcripts of several videos, sending one item per video.
	StreamTranscripts(*structpb.Struct, grpc.ServerStreamingServer[structpb.Struct]) error
}

// RegisterTranscriptServiceServer registers srv on s.
func RegisterTranscriptServiceServer(s grpc.ServiceRegistrar, srv TranscriptServiceServer) {
	s.RegisterService(&TranscriptService_ServiceDesc, srv)
}

func getTranscriptHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TranscriptServiceServer).GetTranscript(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: getTranscriptMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TranscriptServiceServer).GetTranscript(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func streamTranscriptsHandler(srv any, stream grpc.ServerStream) error {
	in := new(structpb.Struct)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(TranscriptServiceServer).StreamTranscripts(in, &grpc.GenericServerStream[structpb.Struct, structpb.Struct]{ServerStream: stream})
}

// TranscriptService_ServiceDesc describes the transcript service for grpc.Server.RegisterService.
var TranscriptService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TranscriptServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetTranscript",
			Handler:    getTranscriptHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamTranscripts",
			Handler:       streamTranscriptsHandler,
			ServerStreams: true,
		},
	},
	Metadata: "ytranscript/v1/transcript.proto",
}

// TranscriptServiceClient calls a remote transcript service.
type TranscriptServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTranscriptServiceClient wraps an established connection.
func NewTranscriptServiceClient(cc grpc.ClientConnInterface) *TranscriptServiceClient {
	return &TranscriptServiceClient{cc: cc}
}

// GetTranscript calls TranscriptService.GetTranscript.
func (c *TranscriptServiceClient) GetTranscript(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getTranscriptMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// StreamTranscripts calls TranscriptService.StreamTranscripts.
func (c *TranscriptServiceClient) StreamTranscripts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &TranscriptService_ServiceDesc.Streams[0], streamTranscriptsMethod, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[structpb.Struct, structpb.Struct]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
