package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/mosaic/pkg/cache"
	"github.com/matzehuels/mosaic/pkg/document"
	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/layout"
	"github.com/matzehuels/mosaic/pkg/observability"
	"github.com/matzehuels/mosaic/pkg/pipeline"
	"github.com/matzehuels/mosaic/pkg/storage"
)

const sceneBody = `{"scene": {
  "name": "api",
  "viewport_width": 300,
  "sections": [{"items": 3, "header": {"width": 0, "height": 20}}]
}}`

func newTestServer(t *testing.T) (*httptest.Server, *observability.Recorder) {
	t.Helper()
	observability.Reset()
	t.Cleanup(observability.Reset)
	rec := observability.NewRecorder()
	rec.Install()

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := New(Config{
		Runner:   pipeline.NewRunner(c, nil, nil),
		Store:    storage.NewMemory(),
		Recorder: rec,
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ts.Close()
		_ = s.Close()
	})
	return ts, rec
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, rd)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if _, err := uuid.Parse(resp.Header.Get(RequestIDHeader)); err != nil {
		t.Errorf("X-Request-ID = %q, want uuid", resp.Header.Get(RequestIDHeader))
	}
	body := decodeBody[map[string]string](t, resp)
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestRequestIDPropagation(t *testing.T) {
	ts, _ := newTestServer(t)
	id := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}
}

func TestLayout(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/v1/layout", sceneBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Cache"); got != "miss" {
		t.Errorf("X-Cache = %q, want miss", got)
	}
	doc := decodeBody[document.Layout](t, resp)
	if doc.Height != 220 || doc.ItemCount() != 3 {
		t.Errorf("layout = height %g, %d items, want 220, 3", doc.Height, doc.ItemCount())
	}

	again := do(t, http.MethodPost, ts.URL+"/v1/layout", sceneBody)
	if got := again.Header.Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
}

func TestLayoutErrors(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed", `{`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown field", `{"scene": {"viewport_width": 300, "sections": []}, "colour": 1}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"no scene", `{}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"narrow grid", `{"scene": {"viewport_width": 300, "sections": []}, "grid_width": 2}`, http.StatusBadRequest, "INVALID_GRID"},
		{"bad scene", `{"scene": {"viewport_width": 0, "sections": []}}`, http.StatusBadRequest, "INVALID_SCENE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, ts.URL+"/v1/layout", tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if body := decodeBody[errorBody](t, resp); body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
		})
	}
}

func TestRender(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/v1/render?format=svg", sceneBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	data, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(data), "<svg") {
		t.Error("response missing <svg> tag")
	}

	dot := do(t, http.MethodPost, ts.URL+"/v1/render?format=dot", sceneBody)
	if ct := dot.Header.Get("Content-Type"); ct != "text/vnd.graphviz" {
		t.Errorf("Content-Type = %q, want text/vnd.graphviz", ct)
	}

	bad := do(t, http.MethodPost, ts.URL+"/v1/render?format=gif", sceneBody)
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", bad.StatusCode)
	}
}

func TestQuery(t *testing.T) {
	ts, _ := newTestServer(t)
	scene := strings.TrimSuffix(strings.TrimPrefix(sceneBody, "{"), "}")

	body := `{` + scene + `, "rect": {"x": 0, "y": 0, "width": 300, "height": 50}}`
	resp := do(t, http.MethodPost, ts.URL+"/v1/query", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	got := decodeBody[QueryResponse](t, resp)
	if got.ContentSize != (geom.Size{Width: 300, Height: 220}) {
		t.Errorf("ContentSize = %v, want 300x220", got.ContentSize)
	}
	if len(got.Attributes) != 3 {
		t.Fatalf("attributes = %d, want 3", len(got.Attributes))
	}
	var headers int
	for _, a := range got.Attributes {
		if a.Kind == layout.KindHeader {
			headers++
		}
	}
	if headers != 1 {
		t.Errorf("header attributes = %d, want 1", headers)
	}

	body = `{` + scene + `, "item": {"section": 0, "item": 1}, "section": 0}`
	got = decodeBody[QueryResponse](t, do(t, http.MethodPost, ts.URL+"/v1/query", body))
	if got.Frame == nil || *got.Frame != geom.NewRect(200, 20, 100, 100) {
		t.Errorf("Frame = %v, want (200,20,100,100)", got.Frame)
	}
	if got.Container == nil || *got.Container != geom.NewRect(0, 0, 300, 220) {
		t.Errorf("Container = %v, want (0,0,300,220)", got.Container)
	}
	if got.Header == nil || *got.Header != geom.NewRect(0, 0, 300, 20) {
		t.Errorf("Header = %v, want (0,0,300,20)", got.Header)
	}
	if got.Footer != nil {
		t.Errorf("Footer = %v, want nil", got.Footer)
	}

	missing := do(t, http.MethodPost, ts.URL+"/v1/query", `{`+scene+`, "item": {"section": 0, "item": 9}}`)
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", missing.StatusCode)
	}
	empty := do(t, http.MethodPost, ts.URL+"/v1/query", sceneBody)
	if empty.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", empty.StatusCode)
	}
}

func TestStoredLayouts(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/v1/layouts", sceneBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	rec := decodeBody[storage.Record](t, resp)
	if resp.Header.Get("Location") != "/v1/layouts/"+rec.ID {
		t.Errorf("Location = %q", resp.Header.Get("Location"))
	}

	got := do(t, http.MethodGet, ts.URL+"/v1/layouts/"+rec.ID, "")
	if got.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", got.StatusCode)
	}
	if r := decodeBody[storage.Record](t, got); r.Layout.Name != "api" {
		t.Errorf("stored name = %q, want api", r.Layout.Name)
	}

	list := decodeBody[map[string][]storage.Record](t, do(t, http.MethodGet, ts.URL+"/v1/layouts?limit=5", ""))
	if len(list["layouts"]) != 1 {
		t.Errorf("list = %d records, want 1", len(list["layouts"]))
	}

	del := do(t, http.MethodDelete, ts.URL+"/v1/layouts/"+rec.ID, "")
	if del.StatusCode != http.StatusNoContent {
		t.Errorf("DELETE status = %d, want 204", del.StatusCode)
	}
	gone := do(t, http.MethodGet, ts.URL+"/v1/layouts/"+rec.ID, "")
	if gone.StatusCode != http.StatusNotFound {
		t.Errorf("GET after DELETE status = %d, want 404", gone.StatusCode)
	}

	bad := do(t, http.MethodGet, ts.URL+"/v1/layouts/nope", "")
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("GET invalid id status = %d, want 400", bad.StatusCode)
	}
	badLimit := do(t, http.MethodGet, ts.URL+"/v1/layouts?limit=x", "")
	if badLimit.StatusCode != http.StatusBadRequest {
		t.Errorf("list invalid limit status = %d, want 400", badLimit.StatusCode)
	}
}

func TestNotFoundRoute(t *testing.T) {
	ts, _ := newTestServer(t)
	resp := do(t, http.MethodGet, ts.URL+"/v2/nothing", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestStats(t *testing.T) {
	ts, rec := newTestServer(t)
	do(t, http.MethodGet, ts.URL+"/healthz", "")
	do(t, http.MethodPost, ts.URL+"/v1/layout", sceneBody)

	stats := decodeBody[observability.Stats](t, do(t, http.MethodGet, ts.URL+"/debug/stats", ""))
	if stats.Layouts != 1 {
		t.Errorf("Layouts = %d, want 1", stats.Layouts)
	}
	if rec.Snapshot().Requests < 2 {
		t.Errorf("Requests = %d, want at least 2", rec.Snapshot().Requests)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"INVALID_SCENE", http.StatusBadRequest},
		{"FILE_NOT_FOUND", http.StatusNotFound},
		{"INTERNAL_ERROR", http.StatusInternalServerError},
		{"UNSUPPORTED", http.StatusNotImplemented},
	}
	for _, tt := range tests {
		err := fmt.Errorf("handler: %w", errs.New(errs.Code(tt.code), "boom"))
		if got := statusFor(err); got != tt.want {
			t.Errorf("statusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
