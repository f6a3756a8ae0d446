// Package security provides input validation for tool arguments.
package security

import (
	"net/url"

	"github.com/PsychArch/jina-mcp-tools/internal/errors"
)

// Validator defines the input validation interface.
type Validator interface {
	ValidateURL(urlStr string) error
}

// DefaultValidator provides the default validation implementation.
type DefaultValidator struct{}

// NewDefaultValidator creates a new default validator.
func NewDefaultValidator() *DefaultValidator {
	return &DefaultValidator{}
}

// ValidateURL checks that a URL is a syntactically valid absolute
// http or https URL. The target host is not resolved or filtered; the
// upstream reader service decides what it will fetch.
func (v *DefaultValidator) ValidateURL(urlStr string) error {
	if urlStr == "" {
		return errors.Validation("URL cannot be empty")
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return errors.ValidationWithDetails(
			"invalid URL format",
			err.Error(),
		)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.ValidationWithDetails(
			"invalid URL scheme",
			"only HTTP and HTTPS are allowed",
		)
	}

	if parsedURL.Host == "" {
		return errors.Validation("URL must have a host")
	}

	return nil
}
