package utils

const (
	ServiceName                           = "pgadmin-api"
	CORSLowSecurityAllowedOriginLocalhost = "http://localhost:*"
	DateLayout                            = "2006-01-02"
)
