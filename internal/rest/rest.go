package rest

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/soundnest/soundnest/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageNum = 10
	PageMinNum     = 5
	PageMaxNum     = 30
)

// getStatusCode will get the code of the error coming up from the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCacheUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
