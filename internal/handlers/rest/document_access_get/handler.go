package document_access_get

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
	identity, err := common.PathAddress(r, "address")
	if err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}

	hasAccess, err := h.service.HasDocumentAccess(r.Context(), id, identity)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, dto.DocumentAccessResponse{HasAccess: hasAccess})
}
