package ping_get

import (
	"net/http"

	"github.com/AlekSi/pointer"
	"ledger/internal/generated/dto"
	"ledger/internal/handlers/rest/common"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: pointer.To("pong"),
	})
}
