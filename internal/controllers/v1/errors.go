package v1

import (
	"errors"
	"net/http"

	"github.com/yash-sojitra/Hisab/internal/models"
)

// httpError is used for responses that only can contain an error.
type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// status translates an error into the HTTP status code for the response.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errCategoryTypeInvalid = errors.New("the type query parameter must be income or expense")
	errImageRequired       = errors.New("image data is required to process a receipt")
	errImageNotBase64      = errors.New("the image data must be base64 encoded")
)
