package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/errs"
	"github.com/gf-b1-bridge/go/internal/models"
)

// Authenticate performs POST /Login and stores the returned session token.
// It fails with *errs.AuthenticationError when the endpoint is unreachable,
// returns non-200, or returns 200 without a SessionId.
func (c *ServiceLayerClient) Authenticate(ctx context.Context) (string, error) {
	password := normalizePassword(c.creds.Password)

	if !utf8.ValidString(c.creds.Username) || !utf8.ValidString(c.creds.CompanyDB) || !utf8.ValidString(password) {
		return "", &errs.AuthenticationError{Message: "credentials are not valid UTF-8"}
	}

	resp, err := c.do(ctx, constants.POST, constants.LoginEndpoint, models.LoginRequest{
		CompanyDB: c.creds.CompanyDB,
		UserName:  c.creds.Username,
		Password:  password,
	})
	if err != nil {
		return "", &errs.AuthenticationError{Message: constants.ErrLoginFailed, Err: err}
	}
	if resp.Status != http.StatusOK {
		return "", &errs.AuthenticationError{Message: sapError(resp.Status, resp.Body).Error()}
	}

	var login models.LoginResponse
	if err := json.Unmarshal(resp.Body, &login); err != nil || login.SessionID == "" {
		return "", &errs.AuthenticationError{Message: constants.ErrNoSessionInLogin}
	}

	c.session = login.SessionID
	c.log.Debug().Int("session_timeout", login.SessionTimeout).Msg("service layer session opened")
	return c.session, nil
}

// EnsureAuthenticated is idempotent: it returns immediately when a session is
// already held and logs in otherwise.
func (c *ServiceLayerClient) EnsureAuthenticated(ctx context.Context) error {
	if c.session != "" {
		return nil
	}
	_, err := c.Authenticate(ctx)
	return err
}

// Logout posts to /Logout and clears the held token. Best effort: it is
// called from teardown and never returns an error.
func (c *ServiceLayerClient) Logout(ctx context.Context) {
	if c.session == "" {
		return
	}
	if _, err := c.do(ctx, constants.POST, constants.LogoutEndpoint, struct{}{}); err != nil {
		c.log.Debug().Err(err).Msg("service layer logout failed")
	}
	c.session = ""
}

// normalizePassword accommodates the legacy storage format: when the stored
// value round-trips through base64 decode/encode unchanged and the decoded
// bytes are valid UTF-8, the decoded value is used. Anything else is used as
// stored. A plaintext password that happens to be valid base64 is decoded
// too; that ambiguity is inherent to the legacy format.
func normalizePassword(stored string) string {
	if stored == "" {
		return stored
	}
	decoded, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return stored
	}
	if base64.StdEncoding.EncodeToString(decoded) != stored || !utf8.Valid(decoded) {
		return stored
	}
	return string(decoded)
}
