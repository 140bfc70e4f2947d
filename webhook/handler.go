package webhook

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zalo-miniapp/openapi-go/internal/json"
	"github.com/zalo-miniapp/openapi-go/internal/logger"
)

// SignatureHeader is the request header carrying the HMAC-SHA256 hex
// signature of the delivery body.
const SignatureHeader = "X-Signature"

// EventFunc consumes one verified webhook delivery. The payload is the raw
// request body; the SDK imposes no schema on it. Returning an error makes
// the handler respond 500 so the sender retries the delivery.
type EventFunc func(ctx context.Context, payload []byte) error

// HandlerConfig carries the settings for [NewHandler].
type HandlerConfig struct {
	// Secret is the shared webhook secret. Required.
	Secret string
	// MaxBodyBytes caps the accepted delivery size. Zero means 1 MiB.
	MaxBodyBytes int64
	// Debug enables per-delivery logging to stderr.
	Debug bool
}

// Handler is an http.Handler that authenticates incoming webhook deliveries
// before handing them to the caller's [EventFunc]. Deliveries without a
// signature are rejected with 400, deliveries with a wrong signature
// with 401; the event callback only ever sees verified payloads.
type Handler struct {
	verifier *Verifier
	onEvent  EventFunc
	maxBody  int64
	log      *logger.Logger
	router   chi.Router
}

// NewHandler constructs a webhook receiver for the given shared secret and
// event callback.
func NewHandler(cfg HandlerConfig, onEvent EventFunc) (*Handler, error) {
	verifier, err := NewVerifier(cfg.Secret)
	if err != nil {
		return nil, err
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	log := logger.Nop()
	if cfg.Debug {
		log = logger.New("webhook")
	}

	h := &Handler{
		verifier: verifier,
		onEvent:  onEvent,
		maxBody:  maxBody,
		log:      log,
	}

	router := chi.NewRouter()
	router.Post("/*", h.handle)
	h.router = router

	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		h.log.Debug().Str("remote", r.RemoteAddr).Msg("delivery without signature")
		h.respond(w, http.StatusBadRequest, "missing signature")
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, h.maxBody))
	if err != nil {
		h.respond(w, http.StatusBadRequest, "unreadable body")
		return
	}

	ok, err := h.verifier.Verify(payload, signature)
	if err != nil {
		h.respond(w, http.StatusBadRequest, "empty body")
		return
	}
	if !ok {
		h.log.Debug().Str("remote", r.RemoteAddr).Msg("signature mismatch")
		h.respond(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	if err := h.onEvent(r.Context(), payload); err != nil {
		h.log.Error().Err(err).Msg("event callback failed")
		h.respond(w, http.StatusInternalServerError, "event handling failed")
		return
	}

	h.log.Debug().Int("bytes", len(payload)).Msg("delivery accepted")
	h.respond(w, http.StatusOK, "success")
}

// respond writes the remote API's envelope shape: error 0 on success, 1
// otherwise, with a human-readable message.
func (h *Handler) respond(w http.ResponseWriter, status int, message string) {
	code := 0
	if status != http.StatusOK {
		code = 1
	}

	body, err := json.Marshal(map[string]any{"error": code, "message": message})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
