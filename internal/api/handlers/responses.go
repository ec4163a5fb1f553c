package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

const msgInternalError = "error interno del servidor"

// RespondJSON writes v as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes an error envelope with the given status code.
func RespondError(w http.ResponseWriter, code int, msg string) {
	RespondJSON(w, code, ErrorResponse{Error: msg})
}

// RespondBadRequest writes a 400 error envelope.
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadRequest, msg)
}

// RespondNotFound writes a 404 error envelope.
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusNotFound, msg)
}

// RespondInternalError writes the generic 500 envelope. The real error is
// logged at the call site, never sent to the client.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidationErrors writes a 422 with the collected field violations.
func RespondValidationErrors(w http.ResponseWriter, msg string, fields []domain.ValidationError) {
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:  msg,
		Fields: fields,
	})
}

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
