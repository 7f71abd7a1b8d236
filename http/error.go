package http

import (
	"net/http"

	"github.com/fwojciec/sitesearch"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	sitesearch.EINVALID:  http.StatusBadRequest,
	sitesearch.ENOTFOUND: http.StatusNotFound,
	sitesearch.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// Error writes err to the client as plain text with the matching status.
// Internal errors are logged and their details hidden.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code := sitesearch.ErrorCode(err)
	if code == sitesearch.EINTERNAL {
		s.logger().Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	http.Error(w, sitesearch.ErrorMessage(err), ErrorStatusCode(code))
}
