package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/rentals"
	"github.com/etnz/rentals/agent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	draft rentals.Draft
	err   error
}

func (f fakeExtractor) Extract(ctx context.Context, text string) (rentals.Draft, error) {
	return f.draft, f.err
}

type fakeAdvisor struct{ narrative string }

func (f fakeAdvisor) Advise(ctx context.Context, props []rentals.Property) (string, error) {
	return f.narrative, nil
}

func newTestServer(t *testing.T, ex Extractor, ad Advisor, props ...rentals.Property) (*httptest.Server, *rentals.Store, *rentals.MemSlot) {
	t.Helper()
	slot := &rentals.MemSlot{}
	if len(props) > 0 {
		data, err := rentals.EncodeCollection(props)
		require.NoError(t, err)
		slot.Set(data)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := rentals.Open(context.Background(), slot, rentals.WithLogger(log))
	require.NoError(t, err)
	srv := httptest.NewServer(NewRouter(NewHandler(store, ex, ad, log), log))
	t.Cleanup(srv.Close)
	return srv, store, slot
}

func property(id, name string, rent float64) rentals.Property {
	p := rentals.NewProperty()
	p.ID = id
	p.Name = name
	p.RentTotal = rentals.M(rent)
	return p
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestCreateProperty(t *testing.T) {
	srv, store, _ := newTestServer(t, nil, nil)

	resp := do(t, "POST", srv.URL+"/api/properties", `{"name":"Kitnet Pampulha","rentTotal":1200,"ufmgAccess":"Fácil"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	got := decodeBody[rentals.Property](t, resp)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, rentals.Easy, got.UFMGAccess)
	assert.Equal(t, 5, got.IdealRating, "defaults apply")
	assert.Equal(t, 1, store.Len())
}

func TestCreateProperty_Invalid(t *testing.T) {
	srv, store, _ := newTestServer(t, nil, nil)

	resp := do(t, "POST", srv.URL+"/api/properties", `{"name":"","idealRating":15}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decodeBody[ErrorBody](t, resp)
	assert.Equal(t, CodeValidation, body.Error.Code)
	assert.Contains(t, body.Error.Message, "name")
	assert.Equal(t, 0, store.Len())

	resp = do(t, "POST", srv.URL+"/api/properties", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProperty(t *testing.T) {
	srv, store, _ := newTestServer(t, nil, nil, property("a", "A", 1000), property("b", "B", 2000))

	resp := do(t, "PUT", srv.URL+"/api/properties/a", `{"rentTotal":1100,"notes":"cheaper now"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID, "position preserved")
	assert.Equal(t, "A", all[0].Name)
	assert.True(t, all[0].RentTotal.Equal(rentals.M(1100)))
	assert.Equal(t, "cheaper now", all[0].Notes)

	resp = do(t, "PUT", srv.URL+"/api/properties/zz", `{}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteProperty(t *testing.T) {
	srv, store, _ := newTestServer(t, nil, nil, property("a", "A", 1000))

	assert.Equal(t, http.StatusNoContent, do(t, "DELETE", srv.URL+"/api/properties/a", "").StatusCode)
	assert.Equal(t, http.StatusNoContent, do(t, "DELETE", srv.URL+"/api/properties/a", "").StatusCode)
	assert.Equal(t, 0, store.Len())

	assert.Equal(t, http.StatusNotFound, do(t, "GET", srv.URL+"/api/properties/a", "").StatusCode)
}

func TestListProperties(t *testing.T) {
	srv, _, _ := newTestServer(t, nil, nil,
		property("a", "Casa Savassi", 3000), property("b", "Kitnet Pampulha", 1000), property("c", "Loft Savassi", 2000))

	resp := do(t, "GET", srv.URL+"/api/properties?q=savassi&sort=rent&dir=asc", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[[]rentals.Property](t, resp)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)

	resp = do(t, "GET", srv.URL+"/api/properties?sort=price", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPersistenceWarning(t *testing.T) {
	srv, _, slot := newTestServer(t, nil, nil)
	slot.Err = errors.New("disk full")

	resp := do(t, "POST", srv.URL+"/api/properties", `{"name":"Kitnet"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(WarningHeader), "disk full")
}

func TestStatsAndChart(t *testing.T) {
	srv, _, _ := newTestServer(t, nil, nil, property("a", "A", 1000))

	stats := decodeBody[map[string]any](t, do(t, "GET", srv.URL+"/api/stats", ""))
	assert.Equal(t, 1.0, stats["count"])
	assert.Equal(t, 1000.0, stats["averageRent"])

	chart := decodeBody[map[string]any](t, do(t, "GET", srv.URL+"/api/chart", ""))
	assert.Equal(t, false, chart["rendered"])
}

func TestExtract(t *testing.T) {
	d := rentals.Draft{Name: rentals.Ptr("Kitnet"), RentTotal: rentals.Ptr(900.0), UFMGAccess: rentals.Ptr(rentals.Easy)}
	srv, store, _ := newTestServer(t, fakeExtractor{draft: d}, nil)

	resp := do(t, "POST", srv.URL+"/api/extract", `{"text":"kitnet for 900"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[rentals.Property](t, resp)
	assert.Equal(t, "Kitnet", got.Name)
	assert.Equal(t, 3, got.CenterAccess, "defaults kept")
	assert.Equal(t, 0, store.Len(), "extraction does not save")
}

func TestDelegateErrors(t *testing.T) {
	testCases := []struct {
		name   string
		ex     Extractor
		ad     Advisor
		path   string
		status int
		code   string
	}{
		{name: "extract not configured", path: "/api/extract", status: http.StatusServiceUnavailable, code: CodeNotConfigured},
		{name: "advisory not configured", path: "/api/advisory", status: http.StatusServiceUnavailable, code: CodeNotConfigured},
		{
			name:   "extraction failed",
			ex:     fakeExtractor{err: agent.ErrExtractionUnavailable},
			path:   "/api/extract",
			status: http.StatusBadGateway,
			code:   CodeDelegateFailed,
		},
		{
			name:   "missing key",
			ex:     &agent.Extractor{},
			path:   "/api/extract",
			status: http.StatusServiceUnavailable,
			code:   CodeNotConfigured,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _, _ := newTestServer(t, tc.ex, tc.ad)
			resp := do(t, "POST", srv.URL+tc.path, `{"text":"x"}`)
			require.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decodeBody[ErrorBody](t, resp).Error.Code)
		})
	}
}

func TestAdvisory(t *testing.T) {
	srv, _, _ := newTestServer(t, nil, fakeAdvisor{narrative: "**Verdict** take A"}, property("a", "A", 1000))
	resp := do(t, "POST", srv.URL+"/api/advisory", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "**Verdict** take A", decodeBody[map[string]string](t, resp)["narrative"])
}

func TestHealthz(t *testing.T) {
	srv, _, _ := newTestServer(t, nil, nil)
	assert.Equal(t, http.StatusOK, do(t, "GET", srv.URL+"/healthz", "").StatusCode)
}
