// Package shared holds response helpers used by every HTTP handler: one
// place maps domain error codes onto status codes so handlers never
// hand-roll statuses.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "attest/pkg/domain-errors"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var statusByCode = map[dErrors.Code]int{
	dErrors.CodeInvalidInput:    http.StatusBadRequest,
	dErrors.CodeAlreadyExists:   http.StatusConflict,
	dErrors.CodeNotFound:        http.StatusNotFound,
	dErrors.CodeForbidden:       http.StatusForbidden,
	dErrors.CodeAlreadyVerified: http.StatusConflict,
	dErrors.CodeUnauthorized:    http.StatusUnauthorized,
	dErrors.CodeInternal:        http.StatusInternalServerError,
}

// WriteError renders a coded domain error. Uncoded errors become opaque
// 500s so infrastructure details never reach the wire.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	msg := "internal error"
	var de *dErrors.Error
	if errors.As(err, &de) && code != dErrors.CodeInternal {
		msg = de.Message()
	}

	WriteJSON(w, status, errorBody{Error: string(code), Message: msg})
}

// WriteJSON renders a JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
