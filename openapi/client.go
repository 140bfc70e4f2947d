package openapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/zalo-miniapp/openapi-go/internal/logger"
	"github.com/zalo-miniapp/openapi-go/models"
)

// Config carries the settings for constructing a [Client] or [AsyncClient].
type Config struct {
	// APIKey is the partner API key issued by Zalo Mini App. Required.
	APIKey string
	// ZaloAppID is the Zalo App the Mini Apps belong to. Required.
	ZaloAppID string
	// Domain overrides the API base URL. Empty means [DomainProd].
	Domain string
	// Timeout bounds each request. Zero means no SDK-enforced timeout; the
	// effective limit is then whatever the underlying transport and the
	// caller's context impose.
	Timeout time.Duration
	// Proxy optionally routes requests through a forward proxy.
	Proxy *models.Proxy
	// Debug enables request/response logging to stderr.
	Debug bool
}

// Client issues blocking calls against the Open API. Each call occupies the
// calling goroutine until the full response has been read. Credentials and
// the operation table are read-only after construction, so a single Client
// is safe for concurrent use.
type Client struct {
	http  *resty.Client
	creds credentials
	log   *logger.Logger
}

// NewClient constructs a blocking client. Returns ErrMissingCredentials when
// the API key or Zalo App ID is empty, or an error if the configured domain
// is not a valid URL.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.ZaloAppID == "" {
		return nil, ErrMissingCredentials
	}

	domain := cfg.Domain
	if domain == "" {
		domain = DomainProd
	}
	baseURL, err := normalizeBaseURL(domain)
	if err != nil {
		return nil, fmt.Errorf("invalid api domain: %w", err)
	}

	cli := resty.New().SetBaseURL(baseURL)
	if cfg.Timeout > 0 {
		cli.SetTimeout(cfg.Timeout)
	}

	log := logger.Nop()
	if cfg.Debug {
		log = logger.New("client")
	}

	c := &Client{
		http:  cli,
		creds: credentials{apiKey: cfg.APIKey, zaloAppID: cfg.ZaloAppID},
		log:   log,
	}
	if cfg.Proxy != nil {
		c.SetProxy(*cfg.Proxy)
	}

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetProxy routes all subsequent requests through the given forward proxy.
func (c *Client) SetProxy(p models.Proxy) {
	c.http.SetProxy(fmt.Sprintf("http://%s:%d", p.Host, p.Port))
}

// RemoveProxy disables the proxy and restores direct connections.
func (c *Client) RemoveProxy() {
	c.http.RemoveProxy()
}

// Do executes the named logical operation with the given parameter map and
// returns the raw response. Builder failures (unknown operation, missing or
// undeclared parameters) surface before any network call; a non-2xx response
// surfaces as *HTTPError with the body preserved.
func (c *Client) Do(ctx context.Context, op string, params map[string]any) (Result, error) {
	req, err := buildRequest(c.creds, op, params)
	if err != nil {
		return Result{}, err
	}

	return c.execute(ctx, op, req)
}

// execute sends a built request and unwraps the response. It is the single
// transport funnel for both the sync client and, via [AsyncClient], the
// async one, which guarantees identical request construction and error
// classification across the two.
func (c *Client) execute(ctx context.Context, op string, req *builtRequest) (Result, error) {
	r := c.http.R().SetContext(ctx)
	for name, values := range req.header {
		r.SetHeader(name, values[0])
	}
	if req.body != nil {
		r.SetBody(req.body)
	}

	c.log.Debug().Str("op", op).Str("method", req.method).Str("url", req.url).Msg("issuing request")

	resp, err := r.Execute(req.method, req.url)
	if err != nil {
		return Result{}, classifyTransportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.log.Debug().Str("op", op).Int("status", resp.StatusCode()).Msg("request failed")
		return Result{}, err
	}

	c.log.Debug().Str("op", op).Int("status", resp.StatusCode()).Msg("request completed")
	return parseResult(resp.Body()), nil
}

// CreateMiniApp creates a new Mini App for your Zalo App. By default the
// owner of the Mini App is the owner of the Zalo App.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/create-mini-app/
func (c *Client) CreateMiniApp(ctx context.Context, info models.AppInfo) (Result, error) {
	return c.Do(ctx, OpCreateApp, info.Payload())
}

// GetMiniApps lists the Mini Apps of your Zalo App with the given
// pagination.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/list-mini-apps/
func (c *Client) GetMiniApps(ctx context.Context, slice models.AppSlice) (Result, error) {
	return c.Do(ctx, OpListApps, slice.Payload())
}

// DeployMiniApp uploads a new version of a Mini App. The build file is
// base64-encoded into the request body.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/deploy-mini-app/
func (c *Client) DeployMiniApp(ctx context.Context, deploy models.DeployApp) (Result, error) {
	params, err := deploy.Payload()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", OpDeployApp, err)
	}

	return c.Do(ctx, OpDeployApp, params)
}

// GetMiniAppVersions lists the versions of a specific Mini App with the
// given pagination.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/list-versions/
func (c *Client) GetMiniAppVersions(ctx context.Context, slice models.AppSlice) (Result, error) {
	return c.Do(ctx, OpListVersions, slice.Payload())
}

// RequestPublishMiniApp submits a version for review. The version must pass
// review before it can be published to production.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/publish-mini-app/
func (c *Client) RequestPublishMiniApp(ctx context.Context, publish models.PublishApp) (Result, error) {
	return c.Do(ctx, OpRequestPublish, publish.Payload())
}

// PublishMiniApp publishes a reviewed version (status READY_TO_PRODUCTION)
// to all users.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/publish-mini-app/
func (c *Client) PublishMiniApp(ctx context.Context, publish models.PublishApp) (Result, error) {
	return c.Do(ctx, OpPublish, publish.Payload())
}
