package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/internal/auth"
	"github.com/mmynk/expensetracker/internal/config"
	"github.com/mmynk/expensetracker/internal/middleware"
	"github.com/mmynk/expensetracker/internal/storage/sqlite"
	"github.com/mmynk/expensetracker/pkg/api"
	"github.com/mmynk/expensetracker/pkg/api/apiconnect"
)

func newTestServer(t *testing.T, secret string) string {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "server.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{CORSOrigins: []string{"*"}, AuthSecret: secret}
	server := httptest.NewServer(newHandler(cfg, store, middleware.NewMetrics()))
	t.Cleanup(server.Close)
	return server.URL
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestHandlerEndpoints(t *testing.T) {
	url := newTestServer(t, "")

	client := apiconnect.NewReportServiceClient(http.DefaultClient, url)
	if _, err := client.GetSettlement(context.Background(), connect.NewRequest(&api.GetSettlementRequest{})); err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}

	if code, body := get(t, url+"/healthz"); code != http.StatusOK || body != "ok\n" {
		t.Errorf("/healthz = %d %q", code, body)
	}

	code, body := get(t, url+"/metrics")
	if code != http.StatusOK {
		t.Fatalf("/metrics status = %d", code)
	}
	for _, want := range []string{"expensetracker_rpc_requests_total", "expensetracker_settlement_transfers_count 1"} {
		if !strings.Contains(body, want) {
			t.Errorf("/metrics missing %q", want)
		}
	}
}

func TestHandlerRequiresToken(t *testing.T) {
	const secret = "server-test-secret-123"
	url := newTestServer(t, secret)

	client := apiconnect.NewCategoryServiceClient(http.DefaultClient, url)
	_, err := client.ListCategories(context.Background(), connect.NewRequest(&api.ListCategoriesRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}

	token, err := auth.NewJWTManager(secret, time.Minute).Generate("test")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	client = apiconnect.NewCategoryServiceClient(http.DefaultClient, url,
		connect.WithInterceptors(middleware.BearerCredentials(token)))
	if _, err := client.ListCategories(context.Background(), connect.NewRequest(&api.ListCategoriesRequest{})); err != nil {
		t.Errorf("ListCategories with token failed: %v", err)
	}

	// Health and metrics stay open.
	if code, _ := get(t, url+"/healthz"); code != http.StatusOK {
		t.Errorf("/healthz = %d", code)
	}
	code, body := get(t, url+"/metrics")
	if code != http.StatusOK {
		t.Fatalf("/metrics status = %d", code)
	}
	for _, want := range []string{`code="unauthenticated"`, `code="ok"`} {
		if !strings.Contains(body, want) {
			t.Errorf("/metrics missing %s", want)
		}
	}
}
