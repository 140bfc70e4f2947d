// Package models contains the request payload types accepted by the Zalo
// Mini App Open API partner endpoints.
//
// Field names mirror the remote API's camelCase parameter names exactly; the
// SDK performs no validation beyond required-parameter presence — length and
// content constraints are enforced by the remote API itself.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/
package models

// Proxy describes a forward proxy for outbound API requests.
type Proxy struct {
	// Host is the proxy server hostname or IP address.
	Host string `json:"host"`
	// Port is the proxy server port number.
	Port int `json:"port"`
}

// AppInfo describes a Mini App to be created.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/create-mini-app/
type AppInfo struct {
	// AppName is the Mini App name (3-50 characters, no sensitive keywords
	// or duplicates).
	AppName string `json:"appName"`
	// AppDescription describes the Mini App (20-500 characters).
	AppDescription string `json:"appDescription"`
	// AppCategory is one of the predefined category names, see AppCategory*
	// constants.
	AppCategory string `json:"appCategory"`
	// AppSubCategory is the optional sub-category.
	AppSubCategory string `json:"appSubCategory,omitempty"`
	// AppLogoURL points at the app logo image.
	AppLogoURL string `json:"appLogoUrl"`
	// Browsable allows public display on Zalo and the Mini App Store.
	Browsable bool `json:"browsable"`
	// ZaloAppID optionally creates the Mini App under an existing Zalo App.
	// When empty, a new Zalo App is created.
	ZaloAppID string `json:"zaloAppId,omitempty"`
}

// AppSlice carries pagination parameters for listing Mini Apps or versions.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/list-mini-apps/
type AppSlice struct {
	// MiniAppID selects the Mini App whose versions are listed. Unused when
	// listing apps.
	MiniAppID string `json:"miniAppId,omitempty"`
	// Offset is the starting position.
	Offset int `json:"offset"`
	// Limit is the number of items to retrieve (maximum 20 for apps).
	Limit int `json:"limit"`
}

// DeployApp carries the data for uploading a new Mini App version.
//
// Exactly one of File and FilePath should be set: File holds the raw zip
// bytes, FilePath points at a zip file on disk. Either way the content is
// base64-encoded into the request body.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/deploy-mini-app/
type DeployApp struct {
	// MiniAppID is the ID of the Mini App being deployed.
	MiniAppID string `json:"miniAppId"`
	// File is the Mini App build in zip format.
	File []byte `json:"-"`
	// FilePath is an on-disk alternative to File.
	FilePath string `json:"-"`
	// Name is the version name.
	Name string `json:"name"`
	// Description describes the uploaded version.
	Description string `json:"description"`
}

// PublishApp identifies a Mini App version for the publish endpoints.
//
// Reference: https://miniapp.zaloplatforms.com/documents/open-apis/partner/publish-mini-app/
type PublishApp struct {
	// MiniAppID is the ID of the Mini App.
	MiniAppID string `json:"miniAppId"`
	// VersionID is the version to publish or submit for review.
	VersionID int64 `json:"versionId"`
	// Description is the optional note attached to a publish request.
	Description string `json:"description,omitempty"`
}
