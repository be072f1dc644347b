package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/platform/logger"
)

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

// Error maps the model sentinels onto HTTP status codes.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, model.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, model.ErrPartNotFound),
		errors.Is(err, model.ErrSupplierNotFound),
		errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrRuleNotFound),
		errors.Is(err, model.ErrUsageNotFound),
		errors.Is(err, model.ErrNotificationNotFound):
		code = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrOrderOutstanding),
		errors.Is(err, model.ErrDuplicateService):
		code = http.StatusConflict
	case errors.Is(err, model.ErrPolicyViolation),
		errors.Is(err, model.ErrInsufficientStock):
		code = http.StatusUnprocessableEntity
	}

	JSON(w, r, code, errorBody{Code: code, Message: err.Error()})
}

// Decode reads a JSON body into v with a size cap.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(model.ErrValidation, err)
	}

	return nil
}
