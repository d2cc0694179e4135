package vagabondv1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names for PlayService
const (
	PlayService_RollCheck_FullMethodName  = "/vagabond.api.v1alpha1.PlayService/RollCheck"
	PlayService_RollDamage_FullMethodName = "/vagabond.api.v1alpha1.PlayService/RollDamage"
	PlayService_QuoteCast_FullMethodName  = "/vagabond.api.v1alpha1.PlayService/QuoteCast"
	PlayService_CastSpell_FullMethodName  = "/vagabond.api.v1alpha1.PlayService/CastSpell"
)

// PlayServiceServer rolls checks and damage and casts spells
type PlayServiceServer interface {
	RollCheck(context.Context, *RollCheckRequest) (*RollCheckResponse, error)
	RollDamage(context.Context, *RollDamageRequest) (*RollDamageResponse, error)
	QuoteCast(context.Context, *CastRequest) (*QuoteCastResponse, error)
	CastSpell(context.Context, *CastRequest) (*CastSpellResponse, error)
}

// UnimplementedPlayServiceServer returns Unimplemented for every method. Embed it
// to stay forward compatible.
type UnimplementedPlayServiceServer struct{}

func (UnimplementedPlayServiceServer) RollCheck(context.Context, *RollCheckRequest) (*RollCheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RollCheck not implemented")
}

func (UnimplementedPlayServiceServer) RollDamage(context.Context, *RollDamageRequest) (*RollDamageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RollDamage not implemented")
}

func (UnimplementedPlayServiceServer) QuoteCast(context.Context, *CastRequest) (*QuoteCastResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method QuoteCast not implemented")
}

func (UnimplementedPlayServiceServer) CastSpell(context.Context, *CastRequest) (*CastSpellResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CastSpell not implemented")
}

// RegisterPlayServiceServer registers the service on a gRPC server
func RegisterPlayServiceServer(s grpc.ServiceRegistrar, srv PlayServiceServer) {
	s.RegisterService(&PlayService_ServiceDesc, srv)
}

// PlayService_ServiceDesc describes PlayService for grpc.Server
var PlayService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "vagabond.api.v1alpha1.PlayService",
	HandlerType: (*PlayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RollCheck",
			Handler:    unary(PlayService_RollCheck_FullMethodName, PlayServiceServer.RollCheck),
		},
		{
			MethodName: "RollDamage",
			Handler:    unary(PlayService_RollDamage_FullMethodName, PlayServiceServer.RollDamage),
		},
		{
			MethodName: "QuoteCast",
			Handler:    unary(PlayService_QuoteCast_FullMethodName, PlayServiceServer.QuoteCast),
		},
		{
			MethodName: "CastSpell",
			Handler:    unary(PlayService_CastSpell_FullMethodName, PlayServiceServer.CastSpell),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vagabond/api/v1alpha1/playservice.json",
}

// PlayServiceClient is the client API for PlayService
type PlayServiceClient interface {
	RollCheck(ctx context.Context, in *RollCheckRequest, opts ...grpc.CallOption) (*RollCheckResponse, error)
	RollDamage(ctx context.Context, in *RollDamageRequest, opts ...grpc.CallOption) (*RollDamageResponse, error)
	QuoteCast(ctx context.Context, in *CastRequest, opts ...grpc.CallOption) (*QuoteCastResponse, error)
	CastSpell(ctx context.Context, in *CastRequest, opts ...grpc.CallOption) (*CastSpellResponse, error)
}

type playServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPlayServiceClient creates a client over an existing connection
func NewPlayServiceClient(cc grpc.ClientConnInterface) PlayServiceClient {
	return &playServiceClient{cc: cc}
}

func (c *playServiceClient) RollCheck(ctx context.Context, in *RollCheckRequest, opts ...grpc.CallOption) (*RollCheckResponse, error) {
	return invoke[RollCheckResponse](ctx, c.cc, PlayService_RollCheck_FullMethodName, in, opts)
}

func (c *playServiceClient) RollDamage(ctx context.Context, in *RollDamageRequest, opts ...grpc.CallOption) (*RollDamageResponse, error) {
	return invoke[RollDamageResponse](ctx, c.cc, PlayService_RollDamage_FullMethodName, in, opts)
}

func (c *playServiceClient) QuoteCast(ctx context.Context, in *CastRequest, opts ...grpc.CallOption) (*QuoteCastResponse, error) {
	return invoke[QuoteCastResponse](ctx, c.cc, PlayService_QuoteCast_FullMethodName, in, opts)
}

func (c *playServiceClient) CastSpell(ctx context.Context, in *CastRequest, opts ...grpc.CallOption) (*CastSpellResponse, error) {
	return invoke[CastSpellResponse](ctx, c.cc, PlayService_CastSpell_FullMethodName, in, opts)
}
