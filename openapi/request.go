package openapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/zalo-miniapp/openapi-go/internal/json"
)

// credentials is the immutable authentication pair attached to every
// request. It is set once at client construction and never mutated, so
// concurrent calls can read it without synchronisation.
type credentials struct {
	apiKey    string
	zaloAppID string
}

// builtRequest is the fully-formed request produced by buildRequest. It is
// transport-agnostic: the sync and async adapters both execute it verbatim.
type builtRequest struct {
	method string
	url    string // path plus query string, relative to the client base URL
	header http.Header
	body   []byte // JSON payload, nil for operations without a body
}

// buildRequest derives an HTTP request from a logical operation name and a
// parameter map. It is a pure function with no side effects beyond reading
// the static operation table: every validation failure happens here, before
// any network I/O.
//
// Parameters named in the operation's path template are substituted into the
// URL; all supplied parameters additionally travel in the query string (GET)
// or the JSON body (other methods), which matches the wire format the remote
// API documents. Missing required parameters fail with ErrMissingParameter,
// undeclared ones with ErrUnknownParameter.
func buildRequest(creds credentials, op string, params map[string]any) (*builtRequest, error) {
	desc, ok := operations[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	known := make(map[string]bool, len(desc.required)+len(desc.optional))
	for _, name := range desc.required {
		known[name] = true
	}
	for _, name := range desc.optional {
		known[name] = true
	}

	for name := range params {
		if !known[name] {
			return nil, fmt.Errorf("%w: %q is not accepted by %s", ErrUnknownParameter, name, op)
		}
	}
	for _, name := range desc.required {
		if value, present := params[name]; !present || value == nil {
			return nil, fmt.Errorf("%w: %s requires %q", ErrMissingParameter, op, name)
		}
	}

	path := desc.path
	for _, name := range pathParams(desc.path) {
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(paramString(params[name])), 1)
	}

	reqURL := path
	var body []byte
	if desc.method == http.MethodGet {
		query := url.Values{}
		for name, value := range params {
			query.Set(name, paramString(value))
		}
		if encoded := query.Encode(); encoded != "" {
			reqURL += "?" + encoded
		}
	} else if len(params) > 0 {
		payload, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", op, err)
		}
		body = payload
	}

	header := http.Header{}
	header.Set("X-Api-Key", creds.apiKey)
	header.Set("X-Zalo-AppID", creds.zaloAppID)
	header.Set("X-Sdk-Version", Version)
	header.Set("X-Sdk-Name", sdkName)
	header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		header.Set("Content-Type", "application/json")
	}

	return &builtRequest{
		method: desc.method,
		url:    reqURL,
		header: header,
		body:   body,
	}, nil
}

// pathParams extracts the parameter names referenced by a path template.
func pathParams(template string) []string {
	var names []string
	for _, segment := range strings.Split(template, "/") {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			names = append(names, segment[1:len(segment)-1])
		}
	}

	return names
}

// paramString renders a parameter value for use in a path segment or query
// string.
func paramString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
