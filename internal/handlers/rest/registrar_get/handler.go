package registrar_get

import (
	"net/http"

	"ledger/internal/generated/dto"
	"ledger/internal/handlers/rest/common"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, h.log, http.StatusOK, dto.RegistrarResponse{
		Registrar: h.service.Registrar().String(),
	})
}
