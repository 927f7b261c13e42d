// Package umami is a small REST client for a self-hosted Umami instance
package umami

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"umamiconnector/internal/core/report"
	perr "umamiconnector/internal/platform/errors"
	"umamiconnector/internal/platform/logger"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "umami-connector"
	maxBody        = 4 << 20
	maxErrBody     = 2048
)

// Options configures the Client
type Options struct {
	// Endpoint is the Umami base URL, e.g. https://stats.example.com
	Endpoint  string
	UserAgent string
	Timeout   time.Duration

	// HTTPClient overrides the default client; Timeout is ignored when set
	HTTPClient *http.Client
}

// Request is one outbound call
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is the status and body of an upstream answer of any status
type Response struct {
	Status int
	Body   []byte
}

// OK reports a 200 answer
func (r Response) OK() bool { return r.Status == http.StatusOK }

// Client talks to one Umami endpoint. It performs no retries
type Client struct {
	http     *http.Client
	opts     Options
	endpoint string
	log      logger.Logger
	now      func() time.Time
}

// NewClient validates the endpoint and fills defaults
func NewClient(o Options) (*Client, error) {
	ep := strings.TrimRight(strings.TrimSpace(o.Endpoint), "/")
	if ep == "" {
		return nil, perr.Required("endpoint")
	}
	u, err := url.Parse(ep)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, perr.WithField(perr.Validationf("umami endpoint must be an absolute URL, got %q", o.Endpoint), "endpoint")
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http:     hc,
		opts:     o,
		endpoint: ep,
		log:      *logger.Named("umami"),
		now:      time.Now,
	}, nil
}

// Endpoint returns the normalized base URL
func (c *Client) Endpoint() string { return c.endpoint }

// Fetch sends one request and returns whatever status came back
// Only a transport failure is an error
func (c *Client) Fetch(ctx context.Context, r Request) (Response, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return Response{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "umami new request failed")
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if r.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		c.log.Warn().Err(err).Str("method", r.Method).Str("path", req.URL.Path).Dur("latency", lat).Msg("umami transport error")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Response{}, perr.Wrap(ctxErr, perr.ErrorCodeUnavailable, report.ErrNoResponse.Error())
		}
		return Response{}, report.ErrNoResponse
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", req.URL.Path).Msg("umami close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		c.log.Warn().Err(err).Str("path", req.URL.Path).Msg("umami read body failed")
		return Response{}, report.ErrNoResponse
	}
	if len(b) > maxBody {
		c.log.Warn().Str("path", req.URL.Path).Int("status", resp.StatusCode).Msg("umami response too large")
		return Response{}, perr.Upstreamf("error while fetching data: response exceeds %d MiB", maxBody>>20)
	}

	c.log.Debug().
		Str("method", r.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Int("bytes", len(b)).
		Dur("latency", lat).
		Msg("umami http response")

	return Response{Status: resp.StatusCode, Body: b}, nil
}

func (c *Client) url(path string) string { return c.endpoint + path }
