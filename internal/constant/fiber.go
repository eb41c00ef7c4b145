package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Finder-Request-ID"
)
