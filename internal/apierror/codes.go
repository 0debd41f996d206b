package apierror

// Error type URIs following the urn:solace:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:solace:error:validation"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:solace:error:bad_request"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:solace:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:solace:error:rate_limit"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:solace:error:internal"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation = "Validation Error"
	TitleBadRequest = "Bad Request"
	TitleNotFound   = "Resource Not Found"
	TitleRateLimit  = "Rate Limit Exceeded"
	TitleInternal   = "Internal Server Error"
)
