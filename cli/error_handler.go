package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/hearthdash/hearth/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

var errPrefix = color.New(color.FgRed, color.Bold).Sprint("error:")

// Handle prints a user-friendly message for the error and returns it.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "%s configuration not found. Create hearth.yml in the current directory or ~/.hearth/.\n", errPrefix)

	case errors.ErrCodeCredentialMissing:
		fmt.Fprintf(os.Stderr, "%s no API key configured for the assistant.\n", errPrefix)
		fmt.Fprintf(os.Stderr, "Set one with 'hearth key set <value>'.\n")

	case errors.ErrCodeTransport:
		fmt.Fprintf(os.Stderr, "%s could not reach the assistant service: %v\n", errPrefix, err)

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(os.Stderr, "%s %v\n", errPrefix, err)

	default:
		fmt.Fprintf(os.Stderr, "%s %v\n", errPrefix, err)
	}

	if h.Verbose {
		if herr, ok := err.(*errors.HearthError); ok {
			fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", herr.ToJSON())
		}
	}
	return err
}
