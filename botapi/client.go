package botapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-bot-admin/internal/config"
	"github.com/jrsteele09/go-bot-admin/internal/errors"
	"github.com/jrsteele09/go-bot-admin/internal/requestid"
	"golang.org/x/oauth2"
)

const contentTypeJSON = "application/json"

// Client is the transport to the Bot API. It never interprets status codes;
// callers inspect them. Network failures are returned as errors and are not
// retried here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// RequestOptions describes one outbound call.
type RequestOptions struct {
	Method string
	Body   []byte
	Header http.Header
	// Token, when set, is attached as the bearer credential.
	Token *oauth2.Token
}

// Response is a backend answer with its body normalised to JSON.
type Response struct {
	StatusCode int
	Payload    json.RawMessage
}

// OK reports whether the status is 2xx.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func New(cfg config.BotAPIConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.GetBotAPIURL(), "/"),
		httpClient: &http.Client{Timeout: cfg.GetBotAPITimeout()},
	}
}

// URL joins path onto the base URL with exactly one slash between them.
func (c *Client) URL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Request issues the call and returns the raw response. The caller owns the body.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (*http.Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), body)
	if err != nil {
		return nil, errors.Wrapf(err, "[botapi Request] build %s %s", method, path)
	}

	for name, values := range opts.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if opts.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	req.Header.Set("Accept", contentTypeJSON)
	// Dashboards must never be served from an intermediate cache.
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
	if opts.Token != nil {
		opts.Token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[botapi Request] %s %s: %w: %w", method, path, errors.ErrBackendUnavailable, err)
	}
	return resp, nil
}

// Send issues the call and reads its payload.
func (c *Client) Send(ctx context.Context, path string, opts RequestOptions) (Response, error) {
	resp, err := c.Request(ctx, path, opts)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: resp.StatusCode, Payload: ReadPayload(resp)}, nil
}
