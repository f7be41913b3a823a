package constant

import "time"

const (
	QUERY_TIMEOUT_DURATION = 5 * time.Second

	DefaultPageSize uint = 25

	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"

	JWT_TYPE_ACCESS  = "access"
	JWT_TYPE_REFRESH = "refresh"
)
