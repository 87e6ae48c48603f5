// Package debox is a client for the DeBox open platform API: user and group
// lookup, and robot text and graphic messages to users and groups.
//
// Every call is a single HTTP request. Non-200 responses are returned as
// *APIError; the client never retries.
package debox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
)

const (
	APIKeyEnv    = "DEBOX_API_KEY"
	APIKeyHeader = "X-API-KEY"

	DefaultTimeout = 10 * time.Second

	maxResponseSize = 10 * 1024 * 1024
)

// RequestRecorder receives one record per API call.
type RequestRecorder interface {
	RecordRequest(ctx context.Context, method string, host string, statusCode int, duration time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordRequest(context.Context, string, string, int, time.Duration, error) {}

// EnvAPIKey reads the API key from DEBOX_API_KEY.
func EnvAPIKey() string {
	return os.Getenv(APIKeyEnv)
}

// Client calls the DeBox open platform. It is safe for concurrent use.
type Client struct {
	apiKey     string
	endpoints  Endpoints
	httpclient *http.Client
	recorder   RequestRecorder
	logger     *zap.Logger
}

type options struct {
	keyProvider func() string
	endpoints   Endpoints
	httpclient  *http.Client
	timeout     time.Duration
	recorder    RequestRecorder
	logger      *zap.Logger
}

// Option configures a Client built by New.
type Option func(*options)

// WithAPIKeyProvider sets where the key comes from when New gets an empty key.
func WithAPIKeyProvider(provider func() string) Option {
	return func(o *options) {
		o.keyProvider = provider
	}
}

func WithEndpoints(endpoints Endpoints) Option {
	return func(o *options) {
		o.endpoints = endpoints
	}
}

// WithBaseURL points the API endpoints at another host.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.endpoints = EndpointsFor(baseURL)
	}
}

// WithHTTPClient replaces the transport. WithTimeout is ignored when set.
func WithHTTPClient(httpclient *http.Client) Option {
	return func(o *options) {
		o.httpclient = httpclient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func WithRecorder(recorder RequestRecorder) Option {
	return func(o *options) {
		o.recorder = recorder
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New returns a client authenticated with apiKey. An empty apiKey falls back
// to the key provider, which reads DEBOX_API_KEY unless replaced.
func New(apiKey string, opts ...Option) (*Client, error) {
	o := options{
		keyProvider: EnvAPIKey,
		endpoints:   DefaultEndpoints(),
		timeout:     DefaultTimeout,
		recorder:    nopRecorder{},
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if apiKey == "" && o.keyProvider != nil {
		apiKey = o.keyProvider()
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	httpclient := o.httpclient
	if httpclient == nil {
		httpclient = &http.Client{Timeout: o.timeout}
	}
	if o.recorder == nil {
		o.recorder = nopRecorder{}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return &Client{
		apiKey:     apiKey,
		endpoints:  o.endpoints,
		httpclient: httpclient,
		recorder:   o.recorder,
		logger:     o.logger,
	}, nil
}

// Endpoints returns the endpoint table the client was built with.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

func (c *Client) GetUserInfo(ctx context.Context, userID string) (*Response, error) {
	return c.get(ctx, c.endpoints.userInfoURL(userID))
}

func (c *Client) GetGroupInfo(ctx context.Context, groupID string) (*Response, error) {
	return c.get(ctx, c.endpoints.groupInfoURL(groupID))
}

// SendMessage sends a text message to a single user.
func (c *Client) SendMessage(ctx context.Context, toUserID, message string) (*Response, error) {
	return c.post(ctx, c.endpoints.SendMessage, MessageRequest{
		ToUserID:   toUserID,
		ObjectName: ObjectNameCommand,
		Message:    message,
	})
}

// SendGraphicMessage sends a titled card with an image and a link to a single user.
func (c *Client) SendGraphicMessage(ctx context.Context, toUserID, title, content, imageURL, href string) (*Response, error) {
	return c.post(ctx, c.endpoints.SendMessage, GraphicMessageRequest{
		ToUserID:   toUserID,
		ObjectName: ObjectNameGraphic,
		Title:      title,
		Content:    content,
		Message:    imageURL,
		Href:       href,
	})
}

func (c *Client) SendGroupTextMessage(ctx context.Context, groupID, toUserID, title, content string) (*Response, error) {
	return c.post(ctx, c.endpoints.SendGroupMessage, GroupMessageRequest{
		ToUserID:   toUserID,
		GroupID:    groupID,
		ObjectName: ObjectNameText,
		Title:      title,
		Content:    content,
		Message:    content,
		Href:       "",
	})
}

func (c *Client) SendGroupGraphicMessage(ctx context.Context, groupID, toUserID, title, content, imageURL, href string) (*Response, error) {
	return c.post(ctx, c.endpoints.SendGroupMessage, GroupMessageRequest{
		ToUserID:   toUserID,
		GroupID:    groupID,
		ObjectName: ObjectNameGraphic,
		Title:      title,
		Content:    content,
		Message:    imageURL,
		Href:       href,
	})
}

func (c *Client) get(ctx context.Context, u string) (*Response, error) {
	return c.do(ctx, http.MethodGet, u, nil)
}

func (c *Client) post(ctx context.Context, u string, reqBody any) (*Response, error) {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("debox: marshaling request: %w", err)
	}
	return c.do(ctx, http.MethodPost, u, jsonBody)
}

func (c *Client) do(ctx context.Context, method, u string, body []byte) (*Response, error) {
	start := time.Now()
	host := extractHost(u)

	resp, statusCode, err := c.roundTrip(ctx, method, u, body)

	c.recorder.RecordRequest(ctx, method, host, statusCode, time.Since(start), err)
	if err != nil {
		c.logger.Debug("debox request failed",
			zap.String("method", method),
			zap.String("host", host),
			zap.Int("status_code", statusCode),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("debox request",
		zap.String("method", method),
		zap.String("host", host),
		zap.Int("status_code", statusCode),
	)
	return resp, nil
}

func (c *Client) roundTrip(ctx context.Context, method, u string, body []byte) (*Response, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("debox: creating request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("debox: sending request: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("debox: reading response: %w", err)
	}
	if len(rawBody) > maxResponseSize {
		return nil, resp.StatusCode, fmt.Errorf("debox: response exceeds maximum size of %d bytes", maxResponseSize)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, &APIError{
			Method:     method,
			URL:        u,
			StatusCode: resp.StatusCode,
			Body:       string(rawBody),
		}
	}

	decoded, err := ParseResponse(rawBody)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return decoded, resp.StatusCode, nil
}

func extractHost(u string) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return ""
	}
	return parsed.Host
}
