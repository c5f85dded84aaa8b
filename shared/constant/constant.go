package constant

import (
	"time"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

const (
	// DateFormat keeps millisecond precision, matching what browsers send back.
	DateFormat = "2006-01-02T15:04:05.000Z07:00"
	DayFormat  = "2006-01-02"
)

const (
	// ReorderStep separates consecutive synthetic created_at values.
	ReorderStep = time.Second
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelSchemaScopeName     = "schema"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorNotFound             = "Not found"
	ResponseErrorMethodNotAllowed     = "Method not allowed"
	ResponseErrorInternal             = "Internal server error"
	ResponseErrorDatabaseUnavailable  = "database unavailable"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	DatabaseStatusConnected    = "connected"
	DatabaseStatusDisconnected = "disconnected"
)

const (
	Empty = ""
)
