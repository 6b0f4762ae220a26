package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "poketeam.api.v1alpha1.TeamBuilderService"

// Full method names
const (
	TeamBuilderService_GetCoverage_FullMethodName    = "/" + ServiceName + "/GetCoverage"
	TeamBuilderService_Recommend_FullMethodName      = "/" + ServiceName + "/Recommend"
	TeamBuilderService_LookupPokemon_FullMethodName  = "/" + ServiceName + "/LookupPokemon"
	TeamBuilderService_LookupMove_FullMethodName     = "/" + ServiceName + "/LookupMove"
	TeamBuilderService_ListSpecies_FullMethodName    = "/" + ServiceName + "/ListSpecies"
	TeamBuilderService_SignIn_FullMethodName         = "/" + ServiceName + "/SignIn"
	TeamBuilderService_SignOut_FullMethodName        = "/" + ServiceName + "/SignOut"
	TeamBuilderService_GetCurrentUser_FullMethodName = "/" + ServiceName + "/GetCurrentUser"
	TeamBuilderService_DeleteAccount_FullMethodName  = "/" + ServiceName + "/DeleteAccount"
	TeamBuilderService_SaveTeam_FullMethodName       = "/" + ServiceName + "/SaveTeam"
	TeamBuilderService_ListTeams_FullMethodName      = "/" + ServiceName + "/ListTeams"
	TeamBuilderService_DeleteTeam_FullMethodName     = "/" + ServiceName + "/DeleteTeam"
	TeamBuilderService_SaveSnapshot_FullMethodName   = "/" + ServiceName + "/SaveSnapshot"
	TeamBuilderService_LoadSnapshot_FullMethodName   = "/" + ServiceName + "/LoadSnapshot"
)

// TeamBuilderServiceServer is the server API for the team builder service
type TeamBuilderServiceServer interface {
	GetCoverage(context.Context, *GetCoverageRequest) (*GetCoverageResponse, error)
	Recommend(context.Context, *RecommendRequest) (*RecommendResponse, error)
	LookupPokemon(context.Context, *LookupPokemonRequest) (*LookupPokemonResponse, error)
	LookupMove(context.Context, *LookupMoveRequest) (*LookupMoveResponse, error)
	ListSpecies(context.Context, *ListSpeciesRequest) (*ListSpeciesResponse, error)
	SignIn(context.Context, *SignInRequest) (*SignInResponse, error)
	SignOut(context.Context, *SignOutRequest) (*SignOutResponse, error)
	GetCurrentUser(context.Context, *GetCurrentUserRequest) (*GetCurrentUserResponse, error)
	DeleteAccount(context.Context, *DeleteAccountRequest) (*DeleteAccountResponse, error)
	SaveTeam(context.Context, *SaveTeamRequest) (*SaveTeamResponse, error)
	ListTeams(context.Context, *ListTeamsRequest) (*ListTeamsResponse, error)
	DeleteTeam(context.Context, *DeleteTeamRequest) (*DeleteTeamResponse, error)
	SaveSnapshot(context.Context, *SaveSnapshotRequest) (*SaveSnapshotResponse, error)
	LoadSnapshot(context.Context, *LoadSnapshotRequest) (*LoadSnapshotResponse, error)
}

// unaryHandler adapts a typed method to a grpc.MethodDesc handler, decoding the
// request with the negotiated codec and running the interceptor chain
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(TeamBuilderServiceServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TeamBuilderServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TeamBuilderServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// TeamBuilderService_ServiceDesc is the grpc.ServiceDesc for the team builder service
var TeamBuilderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TeamBuilderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCoverage",
			Handler:    unaryHandler(TeamBuilderService_GetCoverage_FullMethodName, TeamBuilderServiceServer.GetCoverage),
		},
		{
			MethodName: "Recommend",
			Handler:    unaryHandler(TeamBuilderService_Recommend_FullMethodName, TeamBuilderServiceServer.Recommend),
		},
		{
			MethodName: "LookupPokemon",
			Handler:    unaryHandler(TeamBuilderService_LookupPokemon_FullMethodName, TeamBuilderServiceServer.LookupPokemon),
		},
		{
			MethodName: "LookupMove",
			Handler:    unaryHandler(TeamBuilderService_LookupMove_FullMethodName, TeamBuilderServiceServer.LookupMove),
		},
		{
			MethodName: "ListSpecies",
			Handler:    unaryHandler(TeamBuilderService_ListSpecies_FullMethodName, TeamBuilderServiceServer.ListSpecies),
		},
		{
			MethodName: "SignIn",
			Handler:    unaryHandler(TeamBuilderService_SignIn_FullMethodName, TeamBuilderServiceServer.SignIn),
		},
		{
			MethodName: "SignOut",
			Handler:    unaryHandler(TeamBuilderService_SignOut_FullMethodName, TeamBuilderServiceServer.SignOut),
		},
		{
			MethodName: "GetCurrentUser",
			Handler:    unaryHandler(TeamBuilderService_GetCurrentUser_FullMethodName, TeamBuilderServiceServer.GetCurrentUser),
		},
		{
			MethodName: "DeleteAccount",
			Handler:    unaryHandler(TeamBuilderService_DeleteAccount_FullMethodName, TeamBuilderServiceServer.DeleteAccount),
		},
		{
			MethodName: "SaveTeam",
			Handler:    unaryHandler(TeamBuilderService_SaveTeam_FullMethodName, TeamBuilderServiceServer.SaveTeam),
		},
		{
			MethodName: "ListTeams",
			Handler:    unaryHandler(TeamBuilderService_ListTeams_FullMethodName, TeamBuilderServiceServer.ListTeams),
		},
		{
			MethodName: "DeleteTeam",
			Handler:    unaryHandler(TeamBuilderService_DeleteTeam_FullMethodName, TeamBuilderServiceServer.DeleteTeam),
		},
		{
			MethodName: "SaveSnapshot",
			Handler:    unaryHandler(TeamBuilderService_SaveSnapshot_FullMethodName, TeamBuilderServiceServer.SaveSnapshot),
		},
		{
			MethodName: "LoadSnapshot",
			Handler:    unaryHandler(TeamBuilderService_LoadSnapshot_FullMethodName, TeamBuilderServiceServer.LoadSnapshot),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "poketeam/api/v1alpha1/team_builder.json",
}

// RegisterTeamBuilderServiceServer registers the service on a gRPC server
func RegisterTeamBuilderServiceServer(s grpc.ServiceRegistrar, srv TeamBuilderServiceServer) {
	s.RegisterService(&TeamBuilderService_ServiceDesc, srv)
}

// TeamBuilderServiceClient is the client API for the team builder service
type TeamBuilderServiceClient interface {
	GetCoverage(ctx context.Context, in *GetCoverageRequest, opts ...grpc.CallOption) (*GetCoverageResponse, error)
	Recommend(ctx context.Context, in *RecommendRequest, opts ...grpc.CallOption) (*RecommendResponse, error)
	LookupPokemon(ctx context.Context, in *LookupPokemonRequest, opts ...grpc.CallOption) (*LookupPokemonResponse, error)
	LookupMove(ctx context.Context, in *LookupMoveRequest, opts ...grpc.CallOption) (*LookupMoveResponse, error)
	ListSpecies(ctx context.Context, in *ListSpeciesRequest, opts ...grpc.CallOption) (*ListSpeciesResponse, error)
	SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error)
	SignOut(ctx context.Context, in *SignOutRequest, opts ...grpc.CallOption) (*SignOutResponse, error)
	GetCurrentUser(ctx context.Context, in *GetCurrentUserRequest, opts ...grpc.CallOption) (*GetCurrentUserResponse, error)
	DeleteAccount(ctx context.Context, in *DeleteAccountRequest, opts ...grpc.CallOption) (*DeleteAccountResponse, error)
	SaveTeam(ctx context.Context, in *SaveTeamRequest, opts ...grpc.CallOption) (*SaveTeamResponse, error)
	ListTeams(ctx context.Context, in *ListTeamsRequest, opts ...grpc.CallOption) (*ListTeamsResponse, error)
	DeleteTeam(ctx context.Context, in *DeleteTeamRequest, opts ...grpc.CallOption) (*DeleteTeamResponse, error)
	SaveSnapshot(ctx context.Context, in *SaveSnapshotRequest, opts ...grpc.CallOption) (*SaveSnapshotResponse, error)
	LoadSnapshot(ctx context.Context, in *LoadSnapshotRequest, opts ...grpc.CallOption) (*LoadSnapshotResponse, error)
}

type teamBuilderServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTeamBuilderServiceClient creates a client that speaks the JSON codec over cc
func NewTeamBuilderServiceClient(cc grpc.ClientConnInterface) TeamBuilderServiceClient {
	return &teamBuilderServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *teamBuilderServiceClient) GetCoverage(ctx context.Context, in *GetCoverageRequest, opts ...grpc.CallOption) (*GetCoverageResponse, error) {
	return invoke[GetCoverageResponse](ctx, c.cc, TeamBuilderService_GetCoverage_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) Recommend(ctx context.Context, in *RecommendRequest, opts ...grpc.CallOption) (*RecommendResponse, error) {
	return invoke[RecommendResponse](ctx, c.cc, TeamBuilderService_Recommend_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) LookupPokemon(ctx context.Context, in *LookupPokemonRequest, opts ...grpc.CallOption) (*LookupPokemonResponse, error) {
	return invoke[LookupPokemonResponse](ctx, c.cc, TeamBuilderService_LookupPokemon_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) LookupMove(ctx context.Context, in *LookupMoveRequest, opts ...grpc.CallOption) (*LookupMoveResponse, error) {
	return invoke[LookupMoveResponse](ctx, c.cc, TeamBuilderService_LookupMove_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) ListSpecies(ctx context.Context, in *ListSpeciesRequest, opts ...grpc.CallOption) (*ListSpeciesResponse, error) {
	return invoke[ListSpeciesResponse](ctx, c.cc, TeamBuilderService_ListSpecies_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error) {
	return invoke[SignInResponse](ctx, c.cc, TeamBuilderService_SignIn_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) SignOut(ctx context.Context, in *SignOutRequest, opts ...grpc.CallOption) (*SignOutResponse, error) {
	return invoke[SignOutResponse](ctx, c.cc, TeamBuilderService_SignOut_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) GetCurrentUser(ctx context.Context, in *GetCurrentUserRequest, opts ...grpc.CallOption) (*GetCurrentUserResponse, error) {
	return invoke[GetCurrentUserResponse](ctx, c.cc, TeamBuilderService_GetCurrentUser_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) DeleteAccount(ctx context.Context, in *DeleteAccountRequest, opts ...grpc.CallOption) (*DeleteAccountResponse, error) {
	return invoke[DeleteAccountResponse](ctx, c.cc, TeamBuilderService_DeleteAccount_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) SaveTeam(ctx context.Context, in *SaveTeamRequest, opts ...grpc.CallOption) (*SaveTeamResponse, error) {
	return invoke[SaveTeamResponse](ctx, c.cc, TeamBuilderService_SaveTeam_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) ListTeams(ctx context.Context, in *ListTeamsRequest, opts ...grpc.CallOption) (*ListTeamsResponse, error) {
	return invoke[ListTeamsResponse](ctx, c.cc, TeamBuilderService_ListTeams_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) DeleteTeam(ctx context.Context, in *DeleteTeamRequest, opts ...grpc.CallOption) (*DeleteTeamResponse, error) {
	return invoke[DeleteTeamResponse](ctx, c.cc, TeamBuilderService_DeleteTeam_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) SaveSnapshot(ctx context.Context, in *SaveSnapshotRequest, opts ...grpc.CallOption) (*SaveSnapshotResponse, error) {
	return invoke[SaveSnapshotResponse](ctx, c.cc, TeamBuilderService_SaveSnapshot_FullMethodName, in, opts)
}

func (c *teamBuilderServiceClient) LoadSnapshot(ctx context.Context, in *LoadSnapshotRequest, opts ...grpc.CallOption) (*LoadSnapshotResponse, error) {
	return invoke[LoadSnapshotResponse](ctx, c.cc, TeamBuilderService_LoadSnapshot_FullMethodName, in, opts)
}
