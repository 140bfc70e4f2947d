package openapi

import (
	"context"

	"github.com/zalo-miniapp/openapi-go/internal/logger"
	"github.com/zalo-miniapp/openapi-go/models"
)

// AsyncClient offers the same operation set as [Client] without blocking the
// caller: each operation returns a [*Call] that completes in the background.
// Request construction and error classification are shared with the sync
// client — the only difference is the concurrency mechanism, never the
// semantics.
type AsyncClient struct {
	client *Client
}

// NewAsyncClient constructs a non-blocking client. The configuration rules
// are identical to [NewClient].
func NewAsyncClient(cfg Config) (*AsyncClient, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		client.log = logger.New("async-client")
	}

	return &AsyncClient{client: client}, nil
}

// Call is an in-flight asynchronous API call. Wait for completion via
// [Call.Done] or block on [Call.Result].
type Call struct {
	done chan struct{}
	res  Result
	err  error
}

// Done returns a channel that is closed once the call has completed, whether
// successfully or not.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Result blocks until the call completes and returns its outcome. It is safe
// to call from multiple goroutines and returns the same values every time.
func (c *Call) Result() (Result, error) {
	<-c.done
	return c.res, c.err
}

// resolved returns a Call that has already completed with err. Used when the
// request cannot even be built.
func resolved(err error) *Call {
	call := &Call{done: make(chan struct{})}
	call.err = err
	close(call.done)
	return call
}

// Do starts the named logical operation and returns immediately. Cancelling
// ctx before the response arrives aborts the request, releases the
// underlying connection, and resolves the call with ErrCancelled.
func (a *AsyncClient) Do(ctx context.Context, op string, params map[string]any) *Call {
	// Build eagerly so descriptor violations surface without spawning a
	// goroutine or touching the network.
	req, err := buildRequest(a.client.creds, op, params)
	if err != nil {
		return resolved(err)
	}

	call := &Call{done: make(chan struct{})}
	go func() {
		defer close(call.done)
		call.res, call.err = a.client.execute(ctx, op, req)
	}()

	return call
}

// SetProxy routes all subsequent requests through the given forward proxy.
// It must not be called concurrently with in-flight calls.
func (a *AsyncClient) SetProxy(p models.Proxy) {
	a.client.SetProxy(p)
}

// RemoveProxy disables the proxy and restores direct connections.
func (a *AsyncClient) RemoveProxy() {
	a.client.RemoveProxy()
}

// CreateMiniApp starts a create request, see [Client.CreateMiniApp].
func (a *AsyncClient) CreateMiniApp(ctx context.Context, info models.AppInfo) *Call {
	return a.Do(ctx, OpCreateApp, info.Payload())
}

// GetMiniApps starts a listing request, see [Client.GetMiniApps].
func (a *AsyncClient) GetMiniApps(ctx context.Context, slice models.AppSlice) *Call {
	return a.Do(ctx, OpListApps, slice.Payload())
}

// DeployMiniApp starts a deployment, see [Client.DeployMiniApp].
func (a *AsyncClient) DeployMiniApp(ctx context.Context, deploy models.DeployApp) *Call {
	params, err := deploy.Payload()
	if err != nil {
		return resolved(err)
	}

	return a.Do(ctx, OpDeployApp, params)
}

// GetMiniAppVersions starts a version listing request, see
// [Client.GetMiniAppVersions].
func (a *AsyncClient) GetMiniAppVersions(ctx context.Context, slice models.AppSlice) *Call {
	return a.Do(ctx, OpListVersions, slice.Payload())
}

// RequestPublishMiniApp starts a review submission, see
// [Client.RequestPublishMiniApp].
func (a *AsyncClient) RequestPublishMiniApp(ctx context.Context, publish models.PublishApp) *Call {
	return a.Do(ctx, OpRequestPublish, publish.Payload())
}

// PublishMiniApp starts a production publish, see [Client.PublishMiniApp].
func (a *AsyncClient) PublishMiniApp(ctx context.Context, publish models.PublishApp) *Call {
	return a.Do(ctx, OpPublish, publish.Payload())
}
