package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"ledger/internal/generated/dto"
	"ledger/pkg/logger"
)

const maxBodyBytes = 1 << 20

// Middleware проверяет ed25519 подпись запроса и кладет адрес вызывающего
// в контекст. Каждая подпись принимается один раз. Запрос без заголовков
// подписи проходит анонимно, права проверяют сервисы.
func Middleware(log handlerLogger, maxSkew time.Duration, now func() time.Time, replays ReplayGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Signed(r) {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
			if err != nil {
				reject(w, log, r, http.StatusBadRequest, "failed to read request body")
				return
			}
			if len(body) > maxBodyBytes {
				reject(w, log, r, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			caller, err := verify(r, body, now(), maxSkew)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
				).Warn("request signature rejected")
				reject(w, log, r, http.StatusUnauthorized, err.Error())
				return
			}

			if replays.Seen(replayKey(r.Header.Get(HeaderPublicKey), r.Header.Get(HeaderSignature))) {
				log.With(
					logger.NewField("caller", caller),
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
				).Warn("replayed request rejected")
				reject(w, log, r, http.StatusUnauthorized, ErrReplayedRequest.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

func reject(w http.ResponseWriter, log handlerLogger, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dto.Error{Message: msg}); err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("encode JSON response")
	}
}
