package handler

import (
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/hiresphere/api/internal/model"
)

// writeValidationError converts an ozzo validation result into a 422
// ProblemDetails with per-field errors. Non-validation errors fall back to a
// generic 500.
func writeValidationError(w http.ResponseWriter, err error) {
	verrs, ok := err.(validation.Errors)
	if !ok {
		WriteError(w, model.NewInternalError(""))
		return
	}

	fields := make([]model.FieldError, 0, len(verrs))
	for field, ferr := range verrs {
		fields = append(fields, model.FieldError{Field: field, Message: ferr.Error()})
	}
	// Map iteration order is random; keep responses deterministic.
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	WriteError(w, model.NewValidationError(fields))
}
