package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/alan/release-notes/internal/github"
	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// ReportError writes a failure report: the message, the GitHub response payload
// when the failure came from the API, and the stack trace when one was recorded
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "\n❌ Error: %v\n", err)

	if payload, ok := github.ResponsePayload(err); ok {
		fmt.Fprintf(w, "Response: %s\n", payload)
	}

	var st stackTracer
	if errors.As(err, &st) {
		fmt.Fprintf(w, "\nStack trace:%+v\n", st.StackTrace())
	}
}
