package openapi

import (
	"github.com/zalo-miniapp/openapi-go/internal/json"
)

// Result is the discriminated pass-through value returned for every
// successful call: either a decoded JSON value or, when the body does not
// parse as JSON, the raw response text. The SDK defines no response schema —
// callers interpret the value against the remote API's documentation.
type Result struct {
	value  any
	text   string
	isJSON bool
}

// IsJSON reports whether the response body decoded as JSON.
func (r Result) IsJSON() bool {
	return r.isJSON
}

// JSON returns the decoded JSON value (maps, slices, and primitives), or nil
// when the body was not JSON.
func (r Result) JSON() any {
	return r.value
}

// Text returns the raw response text when the body was not JSON, or an empty
// string otherwise.
func (r Result) Text() string {
	return r.text
}

// Map returns the decoded body as an object, which is what every documented
// endpoint responds with. The second return is false when the body was not a
// JSON object.
func (r Result) Map() (map[string]any, bool) {
	m, ok := r.value.(map[string]any)
	return m, ok
}

// parseResult decodes a successful response body. A body that is not valid
// JSON is carried as raw text rather than treated as an error.
func parseResult(body []byte) Result {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return Result{text: string(body)}
	}

	return Result{value: value, isJSON: true}
}
