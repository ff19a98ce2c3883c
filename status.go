//
// status.go
// Distributed under terms of the MIT license.
//

package ember

import "strconv"

// HTTPProtocol is the only protocol token the wire parser accepts.
const HTTPProtocol = "HTTP/1.1"

// StatusCode is a response status. The fixed set below covers the standard
// 1xx-5xx table; Other is the escape hatch for anything not listed.
type StatusCode struct {
	code   int
	reason string
}

func (s StatusCode) Code() int {
	return s.code
}

// ReasonPhrase returns the canonical reason, unless this is an Other status
// with a user-supplied non-empty reason, in which case that wins.
func (s StatusCode) ReasonPhrase() string {
	if r, ok := canonicalReasons[s.code]; ok && s.reason == "" {
		return r
	}
	if s.reason != "" {
		return s.reason
	}
	return "Other"
}

func (s StatusCode) String() string {
	return strconv.Itoa(s.code)
}

// Other builds a status code outside the fixed table. An empty reason falls
// back to the table's canonical reason if the code happens to be listed.
func Other(code int, reason string) StatusCode {
	return StatusCode{code: code, reason: reason}
}

var canonicalReasons = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",
	103: "Early Hints",

	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non Authoritative Information",
	204: "No Content",
	206: "Partial Content",
	207: "Multi Status",
	208: "Already Reported",
	226: "IM Used",

	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",

	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",

	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	510: "Not Extended",
	511: "Network Authentication Required",
}

var (
	StatusOK                  = Other(200, "")
	StatusCreated             = Other(201, "")
	StatusNoContent           = Other(204, "")
	StatusBadRequest          = Other(400, "")
	StatusUnauthorized        = Other(401, "")
	StatusForbidden           = Other(403, "")
	StatusNotFound            = Other(404, "")
	StatusMethodNotAllowed    = Other(405, "")
	StatusConflict            = Other(409, "")
	StatusInternalServerError = Other(500, "")
	StatusNotImplemented      = Other(501, "")
	StatusServiceUnavailable  = Other(503, "")
)
