package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/pkg/api"
)

// ParticipantServiceName is the fully-qualified name of the ParticipantService service.
const ParticipantServiceName = "expensetracker.v1.ParticipantService"

// These constants are the fully-qualified names of the RPCs defined in this service.
const (
	// ParticipantServiceCreateParticipantProcedure is the fully-qualified name of the ParticipantService's CreateParticipant RPC.
	ParticipantServiceCreateParticipantProcedure = "/expensetracker.v1.ParticipantService/CreateParticipant"
	// ParticipantServiceListParticipantsProcedure is the fully-qualified name of the ParticipantService's ListParticipants RPC.
	ParticipantServiceListParticipantsProcedure = "/expensetracker.v1.ParticipantService/ListParticipants"
	// ParticipantServiceUpdateParticipantProcedure is the fully-qualified name of the ParticipantService's UpdateParticipant RPC.
	ParticipantServiceUpdateParticipantProcedure = "/expensetracker.v1.ParticipantService/UpdateParticipant"
	// ParticipantServiceDeleteParticipantProcedure is the fully-qualified name of the ParticipantService's DeleteParticipant RPC.
	ParticipantServiceDeleteParticipantProcedure = "/expensetracker.v1.ParticipantService/DeleteParticipant"
)

// ParticipantServiceClient is a client for the expensetracker.v1.ParticipantService service.
type ParticipantServiceClient interface {
	CreateParticipant(context.Context, *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	UpdateParticipant(context.Context, *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error)
	DeleteParticipant(context.Context, *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error)
}

// NewParticipantServiceClient constructs a client for the expensetracker.v1.ParticipantService service. The
// JSON codec is always installed; opts may add interceptors or headers.
func NewParticipantServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ParticipantServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &participantServiceClient{
		createParticipant: connect.NewClient[api.CreateParticipantRequest, api.CreateParticipantResponse](
			httpClient,
			baseURL+ParticipantServiceCreateParticipantProcedure,
			opts...,
		),
		listParticipants: connect.NewClient[api.ListParticipantsRequest, api.ListParticipantsResponse](
			httpClient,
			baseURL+ParticipantServiceListParticipantsProcedure,
			opts...,
		),
		updateParticipant: connect.NewClient[api.UpdateParticipantRequest, api.UpdateParticipantResponse](
			httpClient,
			baseURL+ParticipantServiceUpdateParticipantProcedure,
			opts...,
		),
		deleteParticipant: connect.NewClient[api.DeleteParticipantRequest, api.DeleteParticipantResponse](
			httpClient,
			baseURL+ParticipantServiceDeleteParticipantProcedure,
			opts...,
		),
	}
}

// participantServiceClient implements ParticipantServiceClient.
type participantServiceClient struct {
	createParticipant *connect.Client[api.CreateParticipantRequest, api.CreateParticipantResponse]
	listParticipants *connect.Client[api.ListParticipantsRequest, api.ListParticipantsResponse]
	updateParticipant *connect.Client[api.UpdateParticipantRequest, api.UpdateParticipantResponse]
	deleteParticipant *connect.Client[api.DeleteParticipantRequest, api.DeleteParticipantResponse]
}

// CreateParticipant calls expensetracker.v1.ParticipantService.CreateParticipant.
func (c *participantServiceClient) CreateParticipant(ctx context.Context, req *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error) {
	return c.createParticipant.CallUnary(ctx, req)
}

// ListParticipants calls expensetracker.v1.ParticipantService.ListParticipants.
func (c *participantServiceClient) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

// UpdateParticipant calls expensetracker.v1.ParticipantService.UpdateParticipant.
func (c *participantServiceClient) UpdateParticipant(ctx context.Context, req *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	return c.updateParticipant.CallUnary(ctx, req)
}

// DeleteParticipant calls expensetracker.v1.ParticipantService.DeleteParticipant.
func (c *participantServiceClient) DeleteParticipant(ctx context.Context, req *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error) {
	return c.deleteParticipant.CallUnary(ctx, req)
}

// ParticipantServiceHandler is an implementation of the expensetracker.v1.ParticipantService service.
type ParticipantServiceHandler interface {
	CreateParticipant(context.Context, *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	UpdateParticipant(context.Context, *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error)
	DeleteParticipant(context.Context, *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error)
}

// NewParticipantServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewParticipantServiceHandler(svc ParticipantServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	participantServiceCreateParticipantHandler := connect.NewUnaryHandler(
		ParticipantServiceCreateParticipantProcedure,
		svc.CreateParticipant,
		opts...,
	)
	participantServiceListParticipantsHandler := connect.NewUnaryHandler(
		ParticipantServiceListParticipantsProcedure,
		svc.ListParticipants,
		opts...,
	)
	participantServiceUpdateParticipantHandler := connect.NewUnaryHandler(
		ParticipantServiceUpdateParticipantProcedure,
		svc.UpdateParticipant,
		opts...,
	)
	participantServiceDeleteParticipantHandler := connect.NewUnaryHandler(
		ParticipantServiceDeleteParticipantProcedure,
		svc.DeleteParticipant,
		opts...,
	)
	return "/expensetracker.v1.ParticipantService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ParticipantServiceCreateParticipantProcedure:
			participantServiceCreateParticipantHandler.ServeHTTP(w, r)
		case ParticipantServiceListParticipantsProcedure:
			participantServiceListParticipantsHandler.ServeHTTP(w, r)
		case ParticipantServiceUpdateParticipantProcedure:
			participantServiceUpdateParticipantHandler.ServeHTTP(w, r)
		case ParticipantServiceDeleteParticipantProcedure:
			participantServiceDeleteParticipantHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedParticipantServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedParticipantServiceHandler struct{}

func (UnimplementedParticipantServiceHandler) CreateParticipant(context.Context, *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("expensetracker.v1.ParticipantService.CreateParticipant is not implemented"))
}

func (UnimplementedParticipantServiceHandler) ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("expensetracker.v1.ParticipantService.ListParticipants is not implemented"))
}

func (UnimplementedParticipantServiceHandler) UpdateParticipant(context.Context, *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("expensetracker.v1.ParticipantService.UpdateParticipant is not implemented"))
}

func (UnimplementedParticipantServiceHandler) DeleteParticipant(context.Context, *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("expensetracker.v1.ParticipantService.DeleteParticipant is not implemented"))
}
