package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gf-b1-bridge/go/internal/errs"
)

func TestDoNormalizesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))
		if c, err := r.Cookie("B1SESSION"); assert.NoError(t, err) {
			assert.Equal(t, "abc", c.Value)
		}
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))
	defer ts.Close()

	a := New(true)
	resp, err := a.Do(context.Background(), "POST", ts.URL, map[string]string{"X-Extra": "yes"},
		[]*http.Cookie{{Name: "B1SESSION", Value: "abc"}}, []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.Status)
	assert.JSONEq(t, `{"ok":false}`, string(resp.Body))
}

func TestDoReturnsNetworkError(t *testing.T) {
	a := New(true)
	_, err := a.Do(context.Background(), "GET", "http://127.0.0.1:1/", nil, nil, nil)

	var netErr *errs.NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestHookSeesEveryExchange(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	var events []Event
	a := New(true)
	a.SetHook(func(ev Event) { events = append(events, ev) })

	_, err := a.Do(context.Background(), "GET", ts.URL, nil, nil, nil)
	require.NoError(t, err)
	_, err = a.Do(context.Background(), "GET", "http://127.0.0.1:1/", nil, nil, nil)
	require.Error(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, http.StatusOK, events[0].Status)
	assert.NoError(t, events[0].Err)
	assert.Error(t, events[1].Err)
}
