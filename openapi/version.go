package openapi

// Version is the SDK version reported to the remote API in the
// X-Sdk-Version header of every request.
const Version = "0.1.0"

// sdkName identifies this SDK flavour in the X-Sdk-Name header.
const sdkName = "Go"

// DomainProd is the production Open API endpoint used when no domain
// override is configured.
const DomainProd = "https://openapi.mini.zalo.me"
