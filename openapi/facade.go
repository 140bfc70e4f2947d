package openapi

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zalo-miniapp/openapi-go/internal/config"
	"github.com/zalo-miniapp/openapi-go/models"
)

// The package-level functions below mirror every Client operation on a
// single process-wide default client, lazily constructed on first use from
// ZMP_-prefixed environment variables (and the optional ZMP_CONFIG JSON
// file). They add no behavior of their own — no caching, no retries — and
// exist purely as a convenience; prefer constructing an explicit [Client]
// and injecting it where needed.

var (
	defaultMu     sync.Mutex
	defaultClient *Client
)

// Default returns the process-wide default client, constructing it from the
// environment on first call. Returns ErrMissingCredentials (wrapped) when
// neither the environment nor the config file supplies the credential pair.
func Default() (*Client, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient != nil {
		return defaultClient, nil
	}

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			return nil, fmt.Errorf("%w: set ZMP_API_KEY and ZMP_APP_ID", ErrMissingCredentials)
		}
		return nil, fmt.Errorf("load default client config: %w", err)
	}

	clientCfg := Config{
		APIKey:    cfg.APIKey,
		ZaloAppID: cfg.ZaloAppID,
		Domain:    cfg.Domain,
		Timeout:   cfg.RequestTimeout.Std(),
	}
	if cfg.Proxy.Host != "" && cfg.Proxy.Port != 0 {
		clientCfg.Proxy = &models.Proxy{Host: cfg.Proxy.Host, Port: cfg.Proxy.Port}
	}

	client, err := NewClient(clientCfg)
	if err != nil {
		return nil, err
	}

	defaultClient = client
	return defaultClient, nil
}

// SetDefault replaces the process-wide default client with an explicitly
// constructed one. Passing nil resets the facade so the next call
// reconstructs the client from the environment.
func SetDefault(c *Client) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultClient = c
}

// Do executes a logical operation on the default client, see [Client.Do].
func Do(ctx context.Context, op string, params map[string]any) (Result, error) {
	c, err := Default()
	if err != nil {
		return Result{}, err
	}

	return c.Do(ctx, op, params)
}

// CreateMiniApp calls [Client.CreateMiniApp] on the default client.
func CreateMiniApp(ctx context.Context, info models.AppInfo) (Result, error) {
	c, err := Default()
	if err != nil {
		return Result{}, err
	}

	return c.CreateMiniApp(ctx, info)
}

// GetMiniApps calls [Client.GetMiniApps] on the default client.
func GetMiniApps(ctx context.Context, slice models.AppSlice) (Result, error) {
	c, err := Default()
	if err != nil {
		return Result{}, err
	}

	return c.GetMiniApps(ctx, slice)
}

// DeployMiniApp calls [Client.DeployMiniApp] on the default client.
func DeployMiniApp(ctx context.Context, deploy models.DeployApp) (Result, error) {
	c, err := Default()
	if err != nil {
		return Result{}, err
	}

	return c.DeployMiniApp(ctx, deploy)
}

// GetMiniAppVersions calls [Client.GetMiniAppVersions] on the default
// client.
func GetMiniAppVersions(ctx context.Context, slice models.AppSlice) (Result, error) {
	c, err := Default()
	if err != nil {
		return Result{}, err
	}

	return c.GetMiniAppVersions(ctx, slice)
}

// RequestPublishMiniApp calls [Client.RequestPublishMiniApp] on the default
// client.
func RequestPublishMiniApp(ctx context.Context, publish models.PublishApp) (Result, error) {
	c, err := Default()
	if err != nil {
		return Result{}, err
	}

	return c.RequestPublishMiniApp(ctx, publish)
}

// PublishMiniApp calls [Client.PublishMiniApp] on the default client.
func PublishMiniApp(ctx context.Context, publish models.PublishApp) (Result, error) {
	c, err := Default()
	if err != nil {
		return Result{}, err
	}

	return c.PublishMiniApp(ctx, publish)
}
