package document_hash_get

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
	id, err := common.ShipmentID(r)
	if err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}

	hash, err := h.service.GetDocumentHash(r.Context(), id)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, dto.DocumentHashResponse{Hash: hash})
}
