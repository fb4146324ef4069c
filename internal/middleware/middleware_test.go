package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/expensetracker/internal/auth"
	"github.com/mmynk/expensetracker/pkg/api"
	"github.com/mmynk/expensetracker/pkg/api/apiconnect"
)

// echoReports answers GetSettlement with the subject found in the context.
type echoReports struct {
	apiconnect.UnimplementedReportServiceHandler
}

func (echoReports) GetSettlement(ctx context.Context, _ *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	return connect.NewResponse(&api.GetSettlementResponse{
		Balances: []*api.Balance{{Name: GetSubject(ctx)}},
	}), nil
}

func newTestServer(t *testing.T, opts ...connect.HandlerOption) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewReportServiceHandler(echoReports{}, opts...))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("middleware-test-secret", time.Hour)
	metrics := NewMetrics()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	url := newTestServer(t, connect.WithInterceptors(
		LoggingInterceptor(logger),
		metrics.Interceptor(),
		RequireAuth(jwtManager),
	))
	procedure := apiconnect.ReportServiceGetSettlementProcedure

	t.Run("missing token", func(t *testing.T) {
		client := apiconnect.NewReportServiceClient(http.DefaultClient, url)
		_, err := client.GetSettlement(context.Background(), connect.NewRequest(&api.GetSettlementRequest{}))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("expected Unauthenticated, got %v", err)
		}
	})

	t.Run("bad token", func(t *testing.T) {
		client := apiconnect.NewReportServiceClient(http.DefaultClient, url,
			connect.WithInterceptors(BearerCredentials("not-a-jwt")))
		_, err := client.GetSettlement(context.Background(), connect.NewRequest(&api.GetSettlementRequest{}))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("expected Unauthenticated, got %v", err)
		}
	})

	t.Run("rejections are logged and counted", func(t *testing.T) {
		rejected := testutil.ToFloat64(metrics.requests.WithLabelValues(procedure, "unauthenticated"))
		if rejected != 2 {
			t.Errorf("unauthenticated count = %v, want 2", rejected)
		}
		if got := strings.Count(logs.String(), "code=unauthenticated"); got != 2 {
			t.Errorf("logged %d rejections, want 2:\n%s", got, logs.String())
		}
	})

	t.Run("valid token carries subject", func(t *testing.T) {
		token, err := jwtManager.Generate("household")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		client := apiconnect.NewReportServiceClient(http.DefaultClient, url,
			connect.WithInterceptors(BearerCredentials(token)))
		resp, err := client.GetSettlement(context.Background(), connect.NewRequest(&api.GetSettlementRequest{}))
		if err != nil {
			t.Fatalf("GetSettlement failed: %v", err)
		}
		if got := resp.Msg.Balances[0].Name; got != "household" {
			t.Errorf("subject = %q, want household", got)
		}
		if !strings.Contains(logs.String(), "subject=household") {
			t.Errorf("log line missing subject:\n%s", logs.String())
		}
		if ok := testutil.ToFloat64(metrics.requests.WithLabelValues(procedure, "ok")); ok != 1 {
			t.Errorf("ok count = %v, want 1", ok)
		}
	})
}

func TestMetricsInterceptor(t *testing.T) {
	metrics := NewMetrics()
	url := newTestServer(t, connect.WithInterceptors(metrics.Interceptor()))
	client := apiconnect.NewReportServiceClient(http.DefaultClient, url)

	if _, err := client.GetSettlement(context.Background(), connect.NewRequest(&api.GetSettlementRequest{})); err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}
	_, err := client.GetStatistics(context.Background(), connect.NewRequest(&api.GetStatisticsRequest{}))
	if connect.CodeOf(err) != connect.CodeUnimplemented {
		t.Fatalf("expected Unimplemented, got %v", err)
	}

	ok := testutil.ToFloat64(metrics.requests.WithLabelValues(apiconnect.ReportServiceGetSettlementProcedure, "ok"))
	if ok != 1 {
		t.Errorf("ok count = %v, want 1", ok)
	}
	unimpl := testutil.ToFloat64(metrics.requests.WithLabelValues(apiconnect.ReportServiceGetStatisticsProcedure, "unimplemented"))
	if unimpl != 1 {
		t.Errorf("unimplemented count = %v, want 1", unimpl)
	}

	metrics.ObserveSettlement(2)
	expected := `
# HELP expensetracker_settlement_transfers Number of transfers suggested per settlement.
# TYPE expensetracker_settlement_transfers histogram
expensetracker_settlement_transfers_bucket{le="0"} 0
expensetracker_settlement_transfers_bucket{le="1"} 0
expensetracker_settlement_transfers_bucket{le="2"} 1
expensetracker_settlement_transfers_bucket{le="3"} 1
expensetracker_settlement_transfers_bucket{le="5"} 1
expensetracker_settlement_transfers_bucket{le="8"} 1
expensetracker_settlement_transfers_bucket{le="13"} 1
expensetracker_settlement_transfers_bucket{le="21"} 1
expensetracker_settlement_transfers_bucket{le="+Inf"} 1
expensetracker_settlement_transfers_sum 2
expensetracker_settlement_transfers_count 1
`
	if err := testutil.GatherAndCompare(metrics.Registry, strings.NewReader(expected), "expensetracker_settlement_transfers"); err != nil {
		t.Errorf("unexpected settlement histogram: %v", err)
	}
}

func TestCodeOf(t *testing.T) {
	if got := codeOf(nil); got != "ok" {
		t.Errorf("codeOf(nil) = %q", got)
	}
	if got := codeOf(connect.NewError(connect.CodeNotFound, errors.New("x"))); got != "not_found" {
		t.Errorf("codeOf(not found) = %q", got)
	}
	if got := codeOf(errors.New("plain")); got != "unknown" {
		t.Errorf("codeOf(plain) = %q", got)
	}
}
