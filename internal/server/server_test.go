package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gf-b1-bridge/go/internal/bridge"
	"github.com/gf-b1-bridge/go/internal/config"
	"github.com/gf-b1-bridge/go/internal/models"
)

func testServer(t *testing.T, sapHandler http.Handler) *httptest.Server {
	t.Helper()
	sap := httptest.NewServer(sapHandler)
	t.Cleanup(sap.Close)

	cfg := &config.Config{
		Endpoint:  sap.URL,
		CompanyDB: "SBODEMO",
		Username:  "manager",
		Password:  "secret",
		Feeds: map[string]*config.FeedSettings{
			"7": {
				Enabled:      true,
				FieldMapping: map[string]string{"CardName": "1", "EmailAddress": "2"},
			},
		},
	}

	srv := New(bridge.NewProcessor(cfg, zerolog.Nop()), nil, zerolog.Nop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func sapMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/Login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.LoginResponse{SessionID: "abc"})
	})
	mux.HandleFunc("/Logout", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/BusinessPartners", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"CardCode":"C20001","CardName":"Acme Co"}`))
	})
	return mux
}

func TestHealthz(t *testing.T) {
	ts := testServer(t, sapMux())

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWebhookSubmission(t *testing.T) {
	ts := testServer(t, sapMux())

	payload := `{"form_id":"7","entry":{"1":"Acme Co","2":"a@acme.com"},"form":{"id":"7"}}`
	resp, err := http.Post(ts.URL+"/webhooks/gravityforms", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out SubmissionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, string(bridge.StateComplete), out.State)
	assert.Equal(t, "C20001", out.CardCode)
	assert.NotEmpty(t, out.SubmissionID)
}

func TestWebhookSubmissionFailureSurfacesSAPMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/Login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.LoginResponse{SessionID: "abc"})
	})
	mux.HandleFunc("/Logout", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/BusinessPartners", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":{"value":"Invalid BP currency"}}}`))
	})
	ts := testServer(t, mux)

	payload := `{"form_id":"7","entry":{"1":"Acme Co","2":"a@acme.com"},"form":{"id":"7"}}`
	resp, err := http.Post(ts.URL+"/webhooks/gravityforms", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var out SubmissionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, string(bridge.StateFailed), out.State)
	assert.Contains(t, out.Message, "Invalid BP currency")
}

func TestWebhookBadPayload(t *testing.T) {
	ts := testServer(t, sapMux())

	resp, err := http.Post(ts.URL+"/webhooks/gravityforms", "application/json", strings.NewReader("not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestItemsWithoutCache(t *testing.T) {
	ts := testServer(t, sapMux())

	resp, err := http.Get(ts.URL + "/items")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
