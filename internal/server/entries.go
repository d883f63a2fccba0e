package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/qdm12/dyndns-scheduler/internal/data"
)

func (h *handlers) listEntries(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.db.List())
}

type setFieldRequest struct {
	Field data.Field `json:"field"`
	Value any        `json:"value"`
}

var ErrValueTypeNotSupported = errors.New("value type is not supported")

func (h *handlers) setField(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var request setFieldRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&request)
	if err != nil {
		httpError(w, http.StatusBadRequest, "decoding request body: "+err.Error())
		return
	}

	value, err := valueToString(request.Value)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.db.SetField(index, request.Field, value)
	if err != nil {
		httpError(w, errorToStatus(err), err.Error())
		return
	}
	h.logger.Info("entry " + strconv.Itoa(index) + ": " + string(request.Field) + " changed")
	h.writeJSON(w, http.StatusOK, updated)
}

func valueToString(value any) (s string, err error) {
	switch typed := value.(type) {
	case string:
		return typed, nil
	case bool:
		return strconv.FormatBool(typed), nil
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrValueTypeNotSupported, value)
	}
}

func (h *handlers) toggleAutomatic(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	updated, err := h.db.ToggleAutomatic(index)
	if err != nil {
		httpError(w, errorToStatus(err), err.Error())
		return
	}
	h.logger.Info("entry " + strconv.Itoa(index) + ": automatic set to " +
		strconv.FormatBool(updated.Auto))
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *handlers) toggleActive(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	updated, err := h.db.ToggleActive(index)
	if err != nil {
		httpError(w, errorToStatus(err), err.Error())
		return
	}
	h.logger.Info("entry " + strconv.Itoa(index) + ": active set to " +
		strconv.FormatBool(updated.Active))
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *handlers) getEntryDisplay(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	snapshot, err := h.db.DisplaySnapshot(index)
	if err != nil {
		httpError(w, errorToStatus(err), err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

func (h *handlers) getDisplay(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.displayer.Snapshots())
}

func (h *handlers) forceUpdate(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	err := h.updateForcer.ForceUpdate(r.Context(), index)
	if err != nil {
		httpError(w, errorToStatus(err), err.Error())
		return
	}

	snapshot, err := h.db.DisplaySnapshot(index)
	if err != nil {
		httpError(w, errorToStatus(err), err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

func parseIndex(w http.ResponseWriter, r *http.Request) (index int, ok bool) {
	indexString := chi.URLParam(r, "index")
	index, err := strconv.Atoi(indexString)
	if err != nil {
		httpError(w, http.StatusBadRequest, "index "+strconv.Quote(indexString)+
			" is not a valid integer")
		return 0, false
	}
	return index, true
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.logger.Error("encoding JSON response: " + err.Error())
	}
}
