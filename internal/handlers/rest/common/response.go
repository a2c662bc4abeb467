// Package common общие для REST хендлеров разбор запроса, ответы и
// отображение ошибок леджера в HTTP статусы.
package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"ledger/internal/entities"
	"ledger/internal/generated/dto"
	"ledger/internal/pkg/middlewares/auth"
	"ledger/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// StatusFromError Unauthorized дает 401 анонимному вызывающему и 403 остальным.
func StatusFromError(err error, anonymous bool) int {
	switch {
	case errors.Is(err, entities.ErrUnauthorized):
		if anonymous {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case errors.Is(err, entities.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrAlreadyExists),
		errors.Is(err, entities.ErrBoLNotAdded):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func WriteError(w http.ResponseWriter, r *http.Request, log errorLogger, err error) {
	status := StatusFromError(err, auth.Caller(r.Context()).IsNull())

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
			logger.NewField("method", r.Method),
			logger.NewField("path", r.URL.Path),
		).Error("request failed")
		message = http.StatusText(status)
	}

	WriteJSON(w, log, status, dto.Error{Message: message})
}

func WriteBadRequest(w http.ResponseWriter, log errorLogger, message string) {
	WriteJSON(w, log, http.StatusBadRequest, dto.Error{Message: message})
}

func WriteJSON(w http.ResponseWriter, log errorLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
