package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/standardmetrics/smx-mcp/internal/clients/standardmetrics"
	"github.com/standardmetrics/smx-mcp/internal/common"
	"github.com/standardmetrics/smx-mcp/internal/services/analytics"
)

// fixtureBackend fakes the Standard Metrics API. Tests stub payloads per
// path and can inspect the queries each path received.
type fixtureBackend struct {
	mu       sync.Mutex
	srv      *httptest.Server
	payloads map[string]any
	statuses map[string]int
	queries  map[string][]url.Values
}

func newFixtureBackend(t *testing.T) *fixtureBackend {
	t.Helper()

	b := &fixtureBackend{
		payloads: make(map[string]any),
		statuses: make(map[string]int),
		queries:  make(map[string][]url.Values),
	}

	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.queries[r.URL.Path] = append(b.queries[r.URL.Path], r.URL.Query())
		payload, okPayload := b.payloads[r.URL.Path]
		status, okStatus := b.statuses[r.URL.Path]
		b.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if okStatus {
			w.WriteHeader(status)
			w.Write([]byte(`{"detail": "error"}`))
			return
		}
		if !okPayload {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail": "Not found."}`))
			return
		}
		json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(b.srv.Close)

	return b
}

// stub serves payload for the given path
func (b *fixtureBackend) stub(path string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payloads[path] = payload
}

// stubPage serves a one-page paginated envelope wrapping results
func (b *fixtureBackend) stubPage(path string, results ...any) {
	if results == nil {
		results = []any{}
	}
	b.stub(path, map[string]any{
		"results":  results,
		"count":    len(results),
		"next":     nil,
		"previous": nil,
	})
}

// stubStatus forces an HTTP status for the given path
func (b *fixtureBackend) stubStatus(path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statuses[path] = status
}

// lastQuery returns the most recent query string sent to path
func (b *fixtureBackend) lastQuery(t *testing.T, path string) url.Values {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	qs := b.queries[path]
	if len(qs) == 0 {
		t.Fatalf("no requests recorded for %s", path)
	}
	return qs[len(qs)-1]
}

// testHarness provides an in-process MCP client connected to a server built
// from the real client and analytics stack, backed by a fixture API.
type testHarness struct {
	t       *testing.T
	client  *client.Client
	app     *App
	backend *fixtureBackend
}

// newTestHarness assembles the full stack against a fixture backend. The
// returned client has already completed the MCP handshake.
func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	backend := newFixtureBackend(t)

	config := common.NewDefaultConfig()
	config.API.APIKey = "test-key"
	config.API.BaseURL = backend.srv.URL

	logger := common.NewSilentLogger()

	smxClient := standardmetrics.NewClient(config.API.APIKey,
		standardmetrics.WithBaseURL(config.API.BaseURL),
		standardmetrics.WithLogger(logger),
		standardmetrics.WithRateLimit(1000),
	)

	a := newAppWithDeps(config, logger, smxClient, analytics.NewService(smxClient, logger))

	c, err := client.NewInProcessClient(a.MCPServer)
	if err != nil {
		t.Fatalf("Failed to create in-process client: %v", err)
	}

	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("Failed to start client: %v", err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "smx-test-client",
		Version: "1.0.0",
	}
	if _, err := c.Initialize(ctx, initReq); err != nil {
		c.Close()
		t.Fatalf("Failed to initialize MCP: %v", err)
	}

	h := &testHarness{
		t:       t,
		client:  c,
		app:     a,
		backend: backend,
	}

	t.Cleanup(h.close)
	return h
}

// callTool invokes an MCP tool by name with the given arguments.
func (h *testHarness) callTool(name string, args map[string]any) (*mcp.CallToolResult, error) {
	h.t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return h.client.CallTool(context.Background(), req)
}

// toolJSON calls a tool expecting a successful JSON payload and decodes it.
func (h *testHarness) toolJSON(name string, args map[string]any) map[string]any {
	h.t.Helper()

	result, err := h.callTool(name, args)
	if err != nil {
		h.t.Fatalf("%s call failed: %v", name, err)
	}
	if result.IsError {
		h.t.Fatalf("%s returned tool error: %s", name, h.textContent(result))
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(h.textContent(result)), &data); err != nil {
		h.t.Fatalf("%s returned invalid JSON: %v", name, err)
	}
	return data
}

// textContent extracts the first text block from a result.
func (h *testHarness) textContent(result *mcp.CallToolResult) string {
	h.t.Helper()
	if len(result.Content) == 0 {
		h.t.Fatal("result has no content blocks")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		h.t.Fatalf("Content[0] is %T, not TextContent", result.Content[0])
	}
	return tc.Text
}

func (h *testHarness) close() {
	if h.client != nil {
		h.client.Close()
	}
}

// sampleCompany mirrors the company record the API serves
func sampleCompany() map[string]any {
	return map[string]any{
		"id":     "company_123",
		"name":   "Test Company Inc.",
		"slug":   "test-company",
		"sector": "B2B Software",
		"city":   "San Francisco",
	}
}

func asMap(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected JSON object, got %T", v)
	}
	return m
}

func asSlice(t *testing.T, v any) []any {
	t.Helper()
	s, ok := v.([]any)
	if !ok {
		t.Fatalf("expected JSON array, got %T", v)
	}
	return s
}

func decodeJSON(t *testing.T, text string, out any) {
	t.Helper()
	if err := json.Unmarshal([]byte(text), out); err != nil {
		t.Fatalf("invalid JSON payload: %v", err)
	}
}
