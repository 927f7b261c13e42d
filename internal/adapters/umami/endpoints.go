package umami

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"umamiconnector/internal/core/report"
	perr "umamiconnector/internal/platform/errors"
)

// StatusError is a non-200 answer from Umami
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error while fetching data: %d - %s", e.Status, e.Body)
}

// HTTPStatus returns the upstream status
func (e *StatusError) HTTPStatus() int { return e.Status }

func statusError(r Response) error {
	body := r.Body
	if len(body) > maxErrBody {
		body = body[:maxErrBody]
	}
	se := &StatusError{Status: r.Status, Body: strings.TrimSpace(string(body))}
	return perr.Wrap(se, perr.ErrorCodeUpstream, se.Error())
}

// AsStatus returns the upstream status error behind err, if any
func AsStatus(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": {"Bearer " + token}}
}

// Get runs a built query and returns the raw 200 body
func (c *Client) Get(ctx context.Context, q report.QueryDescriptor, token string) (json.RawMessage, error) {
	resp, err := c.Fetch(ctx, Request{
		Method: http.MethodGet,
		URL:    q.URL(c.endpoint),
		Header: bearer(token),
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, statusError(resp)
	}
	if len(strings.TrimSpace(string(resp.Body))) == 0 {
		return nil, report.ErrNoResponse
	}
	return json.RawMessage(resp.Body), nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges a username and password for a bearer token
// A rejected login comes back as a *StatusError
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeJSON, "umami login encode failed")
	}
	resp, err := c.Fetch(ctx, Request{
		Method: http.MethodPost,
		URL:    c.url("/api/auth/login"),
		Body:   body,
	})
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", statusError(resp)
	}
	var out loginResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUpstream, "error while parsing Umami login response")
	}
	if out.Token == "" {
		return "", perr.Upstreamf("umami login response has no token")
	}
	return out.Token, nil
}

// Verify reports whether Umami still accepts token
// The verify endpoint expects the token quoted inside the header value
func (c *Client) Verify(ctx context.Context, token string) (bool, error) {
	resp, err := c.Fetch(ctx, Request{
		Method: http.MethodPost,
		URL:    c.url("/api/auth/verify"),
		Header: bearer(`"` + token + `"`),
	})
	if err != nil {
		return false, err
	}
	return resp.OK(), nil
}

// Ping checks that the instance answers its heartbeat
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.Fetch(ctx, Request{Method: http.MethodGet, URL: c.url("/api/heartbeat")})
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(resp)
	}
	return nil
}
