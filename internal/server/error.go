package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/qdm12/dyndns-scheduler/internal/data"
	"github.com/qdm12/dyndns-scheduler/internal/entry"
)

type errJSONWrapper struct {
	Error string `json:"error"`
}

func httpError(w http.ResponseWriter, status int, errString string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if errString == "" {
		errString = http.StatusText(status)
	}
	body := errJSONWrapper{Error: errString}
	_ = json.NewEncoder(w).Encode(body)
}

func errorToStatus(err error) (status int) {
	switch {
	case errors.Is(err, data.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, data.ErrFieldUnknown),
		errors.Is(err, data.ErrFieldValueInvalid),
		errors.Is(err, entry.ErrNotAutomatic):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
