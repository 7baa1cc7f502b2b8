// Package client implements the SAP Business One Service Layer client: the
// session authenticator and the data operations the bridge needs. One client
// is created per inbound operation and holds at most one session; sessions
// are never shared across operations.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/errs"
	"github.com/gf-b1-bridge/go/internal/redact"
	"github.com/gf-b1-bridge/go/internal/transport"
)

// Credentials are the connection settings for one Service Layer company
// database. Password is the stored value; the authenticator applies the
// legacy base64 heuristic at login time.
type Credentials struct {
	Endpoint  string
	CompanyDB string
	Username  string
	Password  string
}

// ServiceLayerClient talks to one Service Layer instance.
type ServiceLayerClient struct {
	baseURL string
	creds   Credentials
	adapter *transport.Adapter
	session string
	log     zerolog.Logger
}

// New creates a client around an adapter. The adapter's observability hook is
// installed here so every exchange is logged (redacted) at debug level.
func New(creds Credentials, adapter *transport.Adapter, log zerolog.Logger) *ServiceLayerClient {
	baseURL := strings.TrimSuffix(creds.Endpoint, "/")

	c := &ServiceLayerClient{
		baseURL: baseURL,
		creds:   creds,
		adapter: adapter,
		log:     log,
	}
	adapter.SetHook(c.logExchange)
	return c
}

// SessionID returns the currently held session token, empty when not
// authenticated.
func (c *ServiceLayerClient) SessionID() string {
	return c.session
}

func (c *ServiceLayerClient) endpointURL(endpoint string) string {
	return c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
}

// do issues one JSON request, attaching the session cookie when a session is
// held. Body may be nil for GET.
func (c *ServiceLayerClient) do(ctx context.Context, method, endpoint string, body interface{}) (*transport.Response, error) {
	var payload []byte
	headers := map[string]string{}
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		headers[constants.ContentType] = constants.ContentTypeJSON
	}

	var cookies []*http.Cookie
	if c.session != "" {
		cookies = append(cookies, &http.Cookie{Name: constants.SessionCookieName, Value: c.session})
	}

	return c.adapter.Do(ctx, method, c.endpointURL(endpoint), headers, cookies, payload)
}

// queryValues encodes OData query options into a URL suffix.
func queryValues(options map[string]string) string {
	if len(options) == 0 {
		return ""
	}
	params := url.Values{}
	for key, value := range options {
		if value != "" {
			params.Add(key, value)
		}
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// sapError extracts the Service Layer's nested error message
// (error.message.value) from a failure body, falling back through the flat
// OData shape to a generic message when the envelope is unparseable.
func sapError(status int, body []byte) *errs.SAPAPIError {
	for _, path := range []string{"error.message.value", "error.message", "message"} {
		if msg := gjson.GetBytes(body, path); msg.Type == gjson.String && msg.Str != "" {
			return &errs.SAPAPIError{StatusCode: status, Message: msg.Str}
		}
	}
	return &errs.SAPAPIError{StatusCode: status, Message: constants.ErrSAPGenericFailure}
}

// logExchange is the transport hook. Request bodies are logged only at debug
// level and only after redaction.
func (c *ServiceLayerClient) logExchange(ev transport.Event) {
	evt := c.log.Debug().
		Str("method", ev.Method).
		Str("url", ev.URL).
		Dur("duration", ev.Duration)

	if ev.Err != nil {
		evt.AnErr("error", ev.Err).Msg("service layer exchange failed")
		return
	}

	if len(ev.RequestBody) > 0 {
		var m map[string]interface{}
		if err := json.Unmarshal(ev.RequestBody, &m); err == nil {
			evt = evt.Interface("request", redact.Sanitize(m))
		}
	}
	evt.Int("status", ev.Status).Msg("service layer exchange")
}
