// Package openapi implements the server-to-server client for the Zalo Mini
// App partner Open API.
//
// The package offers three ways to call the same operation set:
//
//   - [Client] — blocking calls, one method per operation plus a generic
//     [Client.Do] driven by the declarative operation table;
//   - [AsyncClient] — the identical operation set returning a [*Call] that
//     completes in the background;
//   - package-level functions ([CreateMiniApp], [GetMiniApps], ...) that
//     delegate to a lazily constructed default client configured from
//     ZMP_-prefixed environment variables.
//
// Responses are passed through untouched as a [Result]: a decoded JSON value
// when the body parses as JSON, the raw text otherwise. The SDK performs no
// retries, no response validation, and enforces no timeout unless one is
// configured.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/
package openapi
