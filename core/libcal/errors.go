package libcal

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated is returned when a collection is fetched before Authenticate.
var ErrNotAuthenticated = errors.New("libcal: client is not authenticated")

// StatusError reports a non-success HTTP status from the LibCal API.
type StatusError struct {
	// Op is the operation that failed ("authenticate" or "fetch").
	Op string
	// URL is the request URL without credentials.
	URL string
	// StatusCode is the HTTP status returned by the server.
	StatusCode int
	// Body is a truncated excerpt of the response body.
	Body string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("libcal %s: %s returned %d %s", e.Op, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}
