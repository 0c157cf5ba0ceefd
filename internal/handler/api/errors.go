package api

import (
	"errors"

	"TrendMatrix/internal/domain/models"
	xhttp "TrendMatrix/pkg/http"
)

// domainError maps domain error types onto transport-level app errors:
// bad input becomes 400, upstream fetch failures become 502.
func domainError(err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return xhttp.NewAppError("ERR_BAD_REQUEST", verr.Field, verr.Message, 400).WithError(err)
	}

	var ferr *models.FetchError
	if errors.As(err, &ferr) {
		return xhttp.UpstreamError(ferr.Error()).WithError(err)
	}

	return err
}
