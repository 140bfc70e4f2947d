package models

// Mini App statuses appearing in list responses. Informational only — the
// SDK does not interpret response bodies.
const (
	AppStatusEnable  = "ENABLE"
	AppStatusDisable = "DISABLE"
)

// Version statuses appearing in version list responses.
const (
	VersionStatusDevelopment       = "DEVELOPMENT"
	VersionStatusTesting           = "TESTING"
	VersionStatusWaitingApproval   = "WAITING_APPROVAL"
	VersionStatusRejected          = "REJECTED"
	VersionStatusReadyToProduction = "READY_TO_PRODUCTION"
	VersionStatusProduction        = "PRODUCTION"
)
