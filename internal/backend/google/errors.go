package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"kiwi/internal/service"
)

// wrapError maps API errors onto the service sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}

	var retrieve *oauth2.RetrieveError
	if errors.As(err, &retrieve) {
		return service.ErrAuth
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return service.ErrAuth
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", service.ErrNotFound, gerr.Message)
		}
	}
	return err
}
