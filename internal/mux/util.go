package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"casino-server/pkg/blackjack"
	"casino-server/pkg/texasholdem"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// writeGameError maps game errors onto HTTP statuses: validation errors
// and short stacks are the caller's problem, anything else (an exhausted
// deck, for instance) is ours
func writeGameError(w http.ResponseWriter, err error) {
	writeJSONError(w, statusForError(err), err)
}

func statusForError(err error) int {
	var holdemErr texasholdem.Error
	if errors.As(err, &holdemErr) {
		return http.StatusBadRequest
	}

	var blackjackErr blackjack.Error
	if errors.As(err, &blackjackErr) {
		return http.StatusBadRequest
	}

	if errors.Is(err, texasholdem.ErrInsufficientStack) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
