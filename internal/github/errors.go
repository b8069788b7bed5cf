package github

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/go-github/v57/github"
)

// alreadyExistsCode is the validation error code GitHub returns for a duplicate release tag
const alreadyExistsCode = "already_exists"

// IsNotFound checks if the error is a GitHub 404 response
func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

// IsAlreadyExists checks if the error is GitHub's 422 response for a resource that already exists
func IsAlreadyExists(err error) bool {
	var errResp *github.ErrorResponse
	if !errors.As(err, &errResp) {
		return false
	}
	if errResp.Response == nil || errResp.Response.StatusCode != http.StatusUnprocessableEntity {
		return false
	}

	for _, e := range errResp.Errors {
		if e.Code == alreadyExistsCode {
			return true
		}
	}
	return strings.Contains(errResp.Message, alreadyExistsCode)
}

// ResponsePayload returns the GitHub error response carried by err as indented JSON.
// ok is false when err did not come from a GitHub API response.
func ResponsePayload(err error) (payload string, ok bool) {
	var errResp *github.ErrorResponse
	if !errors.As(err, &errResp) {
		return "", false
	}

	data, marshalErr := json.MarshalIndent(errResp, "", "  ")
	if marshalErr != nil {
		return errResp.Message, true
	}
	return string(data), true
}

func statusCode(err error) int {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}
