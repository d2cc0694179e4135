package vagabondv1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names for ActorService
const (
	ActorService_CreateActor_FullMethodName            = "/vagabond.api.v1alpha1.ActorService/CreateActor"
	ActorService_GetActor_FullMethodName               = "/vagabond.api.v1alpha1.ActorService/GetActor"
	ActorService_UpdateActor_FullMethodName            = "/vagabond.api.v1alpha1.ActorService/UpdateActor"
	ActorService_DeleteActor_FullMethodName            = "/vagabond.api.v1alpha1.ActorService/DeleteActor"
	ActorService_ListActors_FullMethodName             = "/vagabond.api.v1alpha1.ActorService/ListActors"
	ActorService_Rest_FullMethodName                   = "/vagabond.api.v1alpha1.ActorService/Rest"
	ActorService_Breather_FullMethodName               = "/vagabond.api.v1alpha1.ActorService/Breather"
	ActorService_SpendLuck_FullMethodName              = "/vagabond.api.v1alpha1.ActorService/SpendLuck"
	ActorService_CheckPerkPrerequisites_FullMethodName = "/vagabond.api.v1alpha1.ActorService/CheckPerkPrerequisites"
	ActorService_ListActivity_FullMethodName           = "/vagabond.api.v1alpha1.ActorService/ListActivity"
)

// ActorServiceServer manages actor documents, recovery and the activity log
type ActorServiceServer interface {
	CreateActor(context.Context, *CreateActorRequest) (*CreateActorResponse, error)
	GetActor(context.Context, *GetActorRequest) (*GetActorResponse, error)
	UpdateActor(context.Context, *UpdateActorRequest) (*UpdateActorResponse, error)
	DeleteActor(context.Context, *DeleteActorRequest) (*DeleteActorResponse, error)
	ListActors(context.Context, *ListActorsRequest) (*ListActorsResponse, error)
	Rest(context.Context, *RestRequest) (*RestResponse, error)
	Breather(context.Context, *BreatherRequest) (*BreatherResponse, error)
	SpendLuck(context.Context, *SpendLuckRequest) (*SpendLuckResponse, error)
	CheckPerkPrerequisites(context.Context, *CheckPerkPrerequisitesRequest) (*CheckPerkPrerequisitesResponse, error)
	ListActivity(context.Context, *ListActivityRequest) (*ListActivityResponse, error)
}

// UnimplementedActorServiceServer returns Unimplemented for every method. Embed it
// to stay forward compatible.
type UnimplementedActorServiceServer struct{}

func (UnimplementedActorServiceServer) CreateActor(context.Context, *CreateActorRequest) (*CreateActorResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateActor not implemented")
}

func (UnimplementedActorServiceServer) GetActor(context.Context, *GetActorRequest) (*GetActorResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetActor not implemented")
}

func (UnimplementedActorServiceServer) UpdateActor(context.Context, *UpdateActorRequest) (*UpdateActorResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateActor not implemented")
}

func (UnimplementedActorServiceServer) DeleteActor(context.Context, *DeleteActorRequest) (*DeleteActorResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteActor not implemented")
}

func (UnimplementedActorServiceServer) ListActors(context.Context, *ListActorsRequest) (*ListActorsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListActors not implemented")
}

func (UnimplementedActorServiceServer) Rest(context.Context, *RestRequest) (*RestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Rest not implemented")
}

func (UnimplementedActorServiceServer) Breather(context.Context, *BreatherRequest) (*BreatherResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Breather not implemented")
}

func (UnimplementedActorServiceServer) SpendLuck(context.Context, *SpendLuckRequest) (*SpendLuckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SpendLuck not implemented")
}

func (UnimplementedActorServiceServer) CheckPerkPrerequisites(context.Context, *CheckPerkPrerequisitesRequest) (*CheckPerkPrerequisitesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckPerkPrerequisites not implemented")
}

func (UnimplementedActorServiceServer) ListActivity(context.Context, *ListActivityRequest) (*ListActivityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListActivity not implemented")
}

// RegisterActorServiceServer registers the service on a gRPC server
func RegisterActorServiceServer(s grpc.ServiceRegistrar, srv ActorServiceServer) {
	s.RegisterService(&ActorService_ServiceDesc, srv)
}

// ActorService_ServiceDesc describes ActorService for grpc.Server
var ActorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "vagabond.api.v1alpha1.ActorService",
	HandlerType: (*ActorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateActor",
			Handler:    unary(ActorService_CreateActor_FullMethodName, ActorServiceServer.CreateActor),
		},
		{
			MethodName: "GetActor",
			Handler:    unary(ActorService_GetActor_FullMethodName, ActorServiceServer.GetActor),
		},
		{
			MethodName: "UpdateActor",
			Handler:    unary(ActorService_UpdateActor_FullMethodName, ActorServiceServer.UpdateActor),
		},
		{
			MethodName: "DeleteActor",
			Handler:    unary(ActorService_DeleteActor_FullMethodName, ActorServiceServer.DeleteActor),
		},
		{
			MethodName: "ListActors",
			Handler:    unary(ActorService_ListActors_FullMethodName, ActorServiceServer.ListActors),
		},
		{
			MethodName: "Rest",
			Handler:    unary(ActorService_Rest_FullMethodName, ActorServiceServer.Rest),
		},
		{
			MethodName: "Breather",
			Handler:    unary(ActorService_Breather_FullMethodName, ActorServiceServer.Breather),
		},
		{
			MethodName: "SpendLuck",
			Handler:    unary(ActorService_SpendLuck_FullMethodName, ActorServiceServer.SpendLuck),
		},
		{
			MethodName: "CheckPerkPrerequisites",
			Handler:    unary(ActorService_CheckPerkPrerequisites_FullMethodName, ActorServiceServer.CheckPerkPrerequisites),
		},
		{
			MethodName: "ListActivity",
			Handler:    unary(ActorService_ListActivity_FullMethodName, ActorServiceServer.ListActivity),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vagabond/api/v1alpha1/actorservice.json",
}

// ActorServiceClient is the client API for ActorService
type ActorServiceClient interface {
	CreateActor(ctx context.Context, in *CreateActorRequest, opts ...grpc.CallOption) (*CreateActorResponse, error)
	GetActor(ctx context.Context, in *GetActorRequest, opts ...grpc.CallOption) (*GetActorResponse, error)
	UpdateActor(ctx context.Context, in *UpdateActorRequest, opts ...grpc.CallOption) (*UpdateActorResponse, error)
	DeleteActor(ctx context.Context, in *DeleteActorRequest, opts ...grpc.CallOption) (*DeleteActorResponse, error)
	ListActors(ctx context.Context, in *ListActorsRequest, opts ...grpc.CallOption) (*ListActorsResponse, error)
	Rest(ctx context.Context, in *RestRequest, opts ...grpc.CallOption) (*RestResponse, error)
	Breather(ctx context.Context, in *BreatherRequest, opts ...grpc.CallOption) (*BreatherResponse, error)
	SpendLuck(ctx context.Context, in *SpendLuckRequest, opts ...grpc.CallOption) (*SpendLuckResponse, error)
	CheckPerkPrerequisites(ctx context.Context, in *CheckPerkPrerequisitesRequest, opts ...grpc.CallOption) (*CheckPerkPrerequisitesResponse, error)
	ListActivity(ctx context.Context, in *ListActivityRequest, opts ...grpc.CallOption) (*ListActivityResponse, error)
}

type actorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewActorServiceClient creates a client over an existing connection
func NewActorServiceClient(cc grpc.ClientConnInterface) ActorServiceClient {
	return &actorServiceClient{cc: cc}
}

func (c *actorServiceClient) CreateActor(ctx context.Context, in *CreateActorRequest, opts ...grpc.CallOption) (*CreateActorResponse, error) {
	return invoke[CreateActorResponse](ctx, c.cc, ActorService_CreateActor_FullMethodName, in, opts)
}

func (c *actorServiceClient) GetActor(ctx context.Context, in *GetActorRequest, opts ...grpc.CallOption) (*GetActorResponse, error) {
	return invoke[GetActorResponse](ctx, c.cc, ActorService_GetActor_FullMethodName, in, opts)
}

func (c *actorServiceClient) UpdateActor(ctx context.Context, in *UpdateActorRequest, opts ...grpc.CallOption) (*UpdateActorResponse, error) {
	return invoke[UpdateActorResponse](ctx, c.cc, ActorService_UpdateActor_FullMethodName, in, opts)
}

func (c *actorServiceClient) DeleteActor(ctx context.Context, in *DeleteActorRequest, opts ...grpc.CallOption) (*DeleteActorResponse, error) {
	return invoke[DeleteActorResponse](ctx, c.cc, ActorService_DeleteActor_FullMethodName, in, opts)
}

func (c *actorServiceClient) ListActors(ctx context.Context, in *ListActorsRequest, opts ...grpc.CallOption) (*ListActorsResponse, error) {
	return invoke[ListActorsResponse](ctx, c.cc, ActorService_ListActors_FullMethodName, in, opts)
}

func (c *actorServiceClient) Rest(ctx context.Context, in *RestRequest, opts ...grpc.CallOption) (*RestResponse, error) {
	return invoke[RestResponse](ctx, c.cc, ActorService_Rest_FullMethodName, in, opts)
}

func (c *actorServiceClient) Breather(ctx context.Context, in *BreatherRequest, opts ...grpc.CallOption) (*BreatherResponse, error) {
	return invoke[BreatherResponse](ctx, c.cc, ActorService_Breather_FullMethodName, in, opts)
}

func (c *actorServiceClient) SpendLuck(ctx context.Context, in *SpendLuckRequest, opts ...grpc.CallOption) (*SpendLuckResponse, error) {
	return invoke[SpendLuckResponse](ctx, c.cc, ActorService_SpendLuck_FullMethodName, in, opts)
}

func (c *actorServiceClient) CheckPerkPrerequisites(ctx context.Context, in *CheckPerkPrerequisitesRequest, opts ...grpc.CallOption) (*CheckPerkPrerequisitesResponse, error) {
	return invoke[CheckPerkPrerequisitesResponse](ctx, c.cc, ActorService_CheckPerkPrerequisites_FullMethodName, in, opts)
}

func (c *actorServiceClient) ListActivity(ctx context.Context, in *ListActivityRequest, opts ...grpc.CallOption) (*ListActivityResponse, error) {
	return invoke[ListActivityResponse](ctx, c.cc, ActorService_ListActivity_FullMethodName, in, opts)
}
