package consts

const (
	HTTP = "http"

	SchemeDelimiter = "://"
)

const (
	HeaderHost           = "Host"
	HeaderForwardedHost  = "X-Forwarded-Host"
	HeaderForwardedProto = "X-Forwarded-Proto"
)

// URL delimiters
const (
	RuneQuestion = '?'
	RuneHash     = '#'

	StrSlash    = "/"
	StrQuestion = "?"
	StrAmp      = "&"
	StrEquals   = "="
)
