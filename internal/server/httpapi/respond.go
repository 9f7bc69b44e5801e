package httpapi

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error kinds. The set is closed: clients may rely on
// never seeing a value outside it. CodeForbidden is part of the contract
// but is never emitted; ownership mismatches answer NOT_FOUND.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternalError   = "INTERNAL_ERROR"
)

// errorResponse is the uniform error body: a human-readable message plus a
// machine-readable kind.
type errorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail, Code: code})
}
