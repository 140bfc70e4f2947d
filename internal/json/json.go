// Package json centralises JSON encoding for the SDK behind a single import
// so the underlying implementation can be swapped without touching callers.
package json

import (
	json "github.com/bytedance/sonic"
)

func Unmarshal(b []byte, v any) error {
	return json.Unmarshal(b, v)
}

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
