package util

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// WriteErrorResponse sends {"error": message} with the given status.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, errorMessage string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	errorResponse := struct {
		Error string `json:"error"`
	}{Error: errorMessage}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Error().Err(err).Msg("failed to encode error response")
		return
	}
	log.Info().Int("status", statusCode).Str("error", errorMessage).Msg("error response sent")
}

func WriteSuccessResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
		return
	}
	log.Info().Int("status", statusCode).Msg("response sent")
}
