package repository

import (
	"errors"
	"net/http"

	"github.com/google/go-github/v74/github"
)

// notFoundMessage is the message GitHub attaches to 404 responses.
const notFoundMessage = "Not Found"

// IsNotFound reports whether err is the remote saying a resource does not
// exist. Both the status code and the message are checked since different
// failure paths carry one or the other.
func IsNotFound(err error) bool {
	var errResp *github.ErrorResponse
	if !errors.As(err, &errResp) {
		return false
	}
	if errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
		return true
	}
	return errResp.Message == notFoundMessage
}
