package openapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zalo-miniapp/openapi-go/models"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	c, err := NewClient(Config{
		APIKey:    "test-api-key",
		ZaloAppID: "test-app-id",
		Domain:    serverURL,
	})
	require.NoError(t, err)
	return c
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewClient_MissingCredentials(t *testing.T) {
	_, err := NewClient(Config{APIKey: "", ZaloAppID: "app"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = NewClient(Config{APIKey: "key", ZaloAppID: ""})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestNewClient_InvalidDomain(t *testing.T) {
	_, err := NewClient(Config{APIKey: "key", ZaloAppID: "app", Domain: "://broken"})
	require.Error(t, err)
}

func TestNewClient_DefaultsToProductionDomain(t *testing.T) {
	c, err := NewClient(Config{APIKey: "key", ZaloAppID: "app"})
	require.NoError(t, err)
	assert.Equal(t, DomainProd, c.http.BaseURL)
}

// ── Do ──────────────────────────────────────────────────────────────────────

func TestClientDo_JSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/apps", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"a": 1}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	res, err := c.Do(context.Background(), OpListApps, map[string]any{"offset": 0, "limit": 10})

	require.NoError(t, err)
	assert.True(t, res.IsJSON())
	assert.Equal(t, map[string]any{"a": float64(1)}, res.JSON())
}

func TestClientDo_TextResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	res, err := c.Do(context.Background(), OpListApps, map[string]any{"offset": 0, "limit": 10})

	require.NoError(t, err)
	assert.False(t, res.IsJSON())
	assert.Equal(t, "hello", res.Text())
}

func TestClientDo_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("app not found"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), OpListApps, map[string]any{"offset": 0, "limit": 10})

	require.Error(t, err)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "app not found", httpErr.Body)
}

func TestClientDo_SendsAuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "test-app-id", r.Header.Get("X-Zalo-AppID"))
		assert.Equal(t, Version, r.Header.Get("X-Sdk-Version"))
		assert.Equal(t, "Go", r.Header.Get("X-Sdk-Name"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), OpListApps, map[string]any{"offset": 0, "limit": 10})
	require.NoError(t, err)
}

func TestClientDo_BuilderErrorsIssueNoNetworkCall(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := c.Do(ctx, "no_such_operation", nil)
	assert.ErrorIs(t, err, ErrUnknownOperation)

	_, err = c.Do(ctx, OpListApps, map[string]any{"offset": 0})
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = c.Do(ctx, OpListApps, map[string]any{"offset": 0, "limit": 10, "extra": true})
	assert.ErrorIs(t, err, ErrUnknownParameter)

	assert.Equal(t, int64(0), atomic.LoadInt64(&hits))
}

func TestClientDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening any more

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), OpListApps, map[string]any{"offset": 0, "limit": 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Typed operations ────────────────────────────────────────────────────────

func TestClient_TypedMethods(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *Client, ctx context.Context) (Result, error)
		wantMethod string
		wantPath   string
	}{
		{
			name: "create mini app",
			call: func(c *Client, ctx context.Context) (Result, error) {
				return c.CreateMiniApp(ctx, models.AppInfo{
					AppName:        "My Shop",
					AppDescription: "a fine shopping application",
					AppCategory:    models.AppCategoryEcommerce,
					AppLogoURL:     "https://example.com/logo.png",
					Browsable:      true,
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/apps",
		},
		{
			name: "get mini apps",
			call: func(c *Client, ctx context.Context) (Result, error) {
				return c.GetMiniApps(ctx, models.AppSlice{Offset: 0, Limit: 10})
			},
			wantMethod: http.MethodGet,
			wantPath:   "/apps",
		},
		{
			name: "deploy mini app",
			call: func(c *Client, ctx context.Context) (Result, error) {
				return c.DeployMiniApp(ctx, models.DeployApp{
					MiniAppID:   "123456",
					File:        []byte("zipcontent"),
					Name:        "v1.0.0",
					Description: "initial release",
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/apps/123456/upload",
		},
		{
			name: "get mini app versions",
			call: func(c *Client, ctx context.Context) (Result, error) {
				return c.GetMiniAppVersions(ctx, models.AppSlice{MiniAppID: "123456", Offset: 0, Limit: 5})
			},
			wantMethod: http.MethodGet,
			wantPath:   "/apps/123456/versions",
		},
		{
			name: "request publish mini app",
			call: func(c *Client, ctx context.Context) (Result, error) {
				return c.RequestPublishMiniApp(ctx, models.PublishApp{MiniAppID: "123456", VersionID: 789})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/apps/123456/request-publish",
		},
		{
			name: "publish mini app",
			call: func(c *Client, ctx context.Context) (Result, error) {
				return c.PublishMiniApp(ctx, models.PublishApp{MiniAppID: "123456", VersionID: 789})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/apps/123456/publish",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"error": 0, "message": "success"}`))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			res, err := tt.call(c, context.Background())

			require.NoError(t, err)
			m, ok := res.Map()
			require.True(t, ok)
			assert.Equal(t, float64(0), m["error"])
		})
	}
}

func TestClient_DeployMiniApp_WithoutFile(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.DeployMiniApp(context.Background(), models.DeployApp{
		MiniAppID:   "123456",
		Name:        "v1.0.0",
		Description: "no file attached",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.Equal(t, int64(0), atomic.LoadInt64(&hits))
}
