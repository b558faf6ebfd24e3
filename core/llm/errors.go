package llm

import (
	"context"
	"errors"

	apperrors "github.com/ipierette/catbytes-portfolio/core/errors"
)

// UpstreamError converts a provider failure into an ExternalAPIError.
// Errors that already are one pass through; deadlines become 504, the rest 502.
func UpstreamError(provider string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsExternalAPI(err) {
		return err
	}
	status := 502
	if errors.Is(err, context.DeadlineExceeded) {
		status = 504
	}
	return &apperrors.ExternalAPIError{API: provider, StatusCode: status, Message: err.Error()}
}
