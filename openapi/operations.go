package openapi

import "net/http"

// Logical operation names accepted by [Client.Do] and [AsyncClient.Do].
const (
	OpCreateApp      = "create_app"
	OpListApps       = "list_apps"
	OpDeployApp      = "deploy_app"
	OpListVersions   = "list_versions"
	OpRequestPublish = "request_publish"
	OpPublish        = "publish"
)

// operation describes how to build the HTTP request for one logical
// operation. Parameters named in the path template are substituted into the
// URL; every supplied parameter additionally travels in the query string for
// GET operations and in the JSON body otherwise, matching the remote
// contract exactly.
type operation struct {
	method   string
	path     string // template, path parameters in {braces}
	required []string
	optional []string
}

// operations is the static descriptor table shared by the sync and async
// clients. It is never mutated after package initialisation, so concurrent
// reads need no synchronisation. New endpoints are added here without
// touching the transport adapters.
var operations = map[string]operation{
	OpCreateApp: {
		method:   http.MethodPost,
		path:     "/apps",
		required: []string{"appName", "appDescription", "appCategory", "appLogoUrl", "browsable"},
		optional: []string{"appSubCategory", "zaloAppId"},
	},
	OpListApps: {
		method:   http.MethodGet,
		path:     "/apps",
		required: []string{"offset", "limit"},
	},
	OpDeployApp: {
		method:   http.MethodPost,
		path:     "/apps/{miniAppId}/upload",
		required: []string{"miniAppId", "file", "name", "description"},
	},
	OpListVersions: {
		method:   http.MethodGet,
		path:     "/apps/{miniAppId}/versions",
		required: []string{"miniAppId", "offset", "limit"},
	},
	OpRequestPublish: {
		method:   http.MethodPost,
		path:     "/apps/{miniAppId}/request-publish",
		required: []string{"miniAppId", "versionId"},
		optional: []string{"description"},
	},
	OpPublish: {
		method:   http.MethodPost,
		path:     "/apps/{miniAppId}/publish",
		required: []string{"miniAppId", "versionId"},
		optional: []string{"description"},
	},
}

// Operations returns the supported logical operation names. The returned
// slice is a copy; mutating it does not affect the descriptor table.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}

	return names
}
