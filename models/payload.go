package models

import (
	"encoding/base64"
	"fmt"
	"os"
)

// Payload converts the model into the parameter map consumed by the request
// builder. Optional fields are dropped when empty, mirroring the remote
// API's expectations.
func (a AppInfo) Payload() map[string]any {
	payload := map[string]any{
		"appName":        a.AppName,
		"appDescription": a.AppDescription,
		"appCategory":    a.AppCategory,
		"appLogoUrl":     a.AppLogoURL,
		"browsable":      a.Browsable,
	}
	if a.AppSubCategory != "" {
		payload["appSubCategory"] = a.AppSubCategory
	}
	if a.ZaloAppID != "" {
		payload["zaloAppId"] = a.ZaloAppID
	}

	return payload
}

// Payload converts the pagination slice into the parameter map consumed by
// the request builder. MiniAppID is included only when set, so the same type
// serves both the app listing (no Mini App context) and the version listing.
func (s AppSlice) Payload() map[string]any {
	payload := map[string]any{
		"offset": s.Offset,
		"limit":  s.Limit,
	}
	if s.MiniAppID != "" {
		payload["miniAppId"] = s.MiniAppID
	}

	return payload
}

// Payload converts the deployment data into the parameter map consumed by
// the request builder. The build file is base64-encoded: from File when set,
// otherwise read from FilePath. When neither source is provided the "file"
// key is left out so the builder reports the missing required parameter.
// Returns an error only when FilePath is set but cannot be read.
func (d DeployApp) Payload() (map[string]any, error) {
	content := d.File
	if content == nil && d.FilePath != "" {
		read, err := os.ReadFile(d.FilePath)
		if err != nil {
			return nil, fmt.Errorf("read deploy file: %w", err)
		}
		content = read
	}

	payload := map[string]any{
		"miniAppId":   d.MiniAppID,
		"name":        d.Name,
		"description": d.Description,
	}
	if content != nil {
		payload["file"] = base64.StdEncoding.EncodeToString(content)
	}

	return payload, nil
}

// Payload converts the publish data into the parameter map consumed by the
// request builder.
func (p PublishApp) Payload() map[string]any {
	payload := map[string]any{
		"miniAppId": p.MiniAppID,
		"versionId": p.VersionID,
	}
	if p.Description != "" {
		payload["description"] = p.Description
	}

	return payload
}
