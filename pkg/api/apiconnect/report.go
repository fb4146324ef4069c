package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/pkg/api"
)

// ReportServiceName is the fully-qualified name of the ReportService service.
const ReportServiceName = "expensetracker.v1.ReportService"

// These constants are the fully-qualified names of the RPCs defined in this service.
const (
	// ReportServiceGetStatisticsProcedure is the fully-qualified name of the ReportService's GetStatistics RPC.
	ReportServiceGetStatisticsProcedure = "/expensetracker.v1.ReportService/GetStatistics"
	// ReportServiceGetSettlementProcedure is the fully-qualified name of the ReportService's GetSettlement RPC.
	ReportServiceGetSettlementProcedure = "/expensetracker.v1.ReportService/GetSettlement"
)

// ReportServiceClient is a client for the expensetracker.v1.ReportService service.
type ReportServiceClient interface {
	GetStatistics(context.Context, *connect.Request[api.GetStatisticsRequest]) (*connect.Response[api.GetStatisticsResponse], error)
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error)
}

// NewReportServiceClient constructs a client for the expensetracker.v1.ReportService service. The
// JSON codec is always installed; opts may add interceptors or headers.
func NewReportServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReportServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &reportServiceClient{
		getStatistics: connect.NewClient[api.GetStatisticsRequest, api.GetStatisticsResponse](
			httpClient,
			baseURL+ReportServiceGetStatisticsProcedure,
			opts...,
		),
		getSettlement: connect.NewClient[api.GetSettlementRequest, api.GetSettlementResponse](
			httpClient,
			baseURL+ReportServiceGetSettlementProcedure,
			opts...,
		),
	}
}

// reportServiceClient implements ReportServiceClient.
type reportServiceClient struct {
	getStatistics *connect.Client[api.GetStatisticsRequest, api.GetStatisticsResponse]
	getSettlement *connect.Client[api.GetSettlementRequest, api.GetSettlementResponse]
}

// GetStatistics calls expensetracker.v1.ReportService.GetStatistics.
func (c *reportServiceClient) GetStatistics(ctx context.Context, req *connect.Request[api.GetStatisticsRequest]) (*connect.Response[api.GetStatisticsResponse], error) {
	return c.getStatistics.CallUnary(ctx, req)
}

// GetSettlement calls expensetracker.v1.ReportService.GetSettlement.
func (c *reportServiceClient) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	return c.getSettlement.CallUnary(ctx, req)
}

// ReportServiceHandler is an implementation of the expensetracker.v1.ReportService service.
type ReportServiceHandler interface {
	GetStatistics(context.Context, *connect.Request[api.GetStatisticsRequest]) (*connect.Response[api.GetStatisticsResponse], error)
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error)
}

// NewReportServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewReportServiceHandler(svc ReportServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	reportServiceGetStatisticsHandler := connect.NewUnaryHandler(
		ReportServiceGetStatisticsProcedure,
		svc.GetStatistics,
		opts...,
	)
	reportServiceGetSettlementHandler := connect.NewUnaryHandler(
		ReportServiceGetSettlementProcedure,
		svc.GetSettlement,
		opts...,
	)
	return "/expensetracker.v1.ReportService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ReportServiceGetStatisticsProcedure:
			reportServiceGetStatisticsHandler.ServeHTTP(w, r)
		case ReportServiceGetSettlementProcedure:
			reportServiceGetSettlementHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedReportServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedReportServiceHandler struct{}

func (UnimplementedReportServiceHandler) GetStatistics(context.Context, *connect.Request[api.GetStatisticsRequest]) (*connect.Response[api.GetStatisticsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("expensetracker.v1.ReportService.GetStatistics is not implemented"))
}

func (UnimplementedReportServiceHandler) GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("expensetracker.v1.ReportService.GetSettlement is not implemented"))
}
