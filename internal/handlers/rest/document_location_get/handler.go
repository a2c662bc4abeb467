package document_location_get

import (
	"net/http"

	"ledger/internal/generated/dto"
	"ledger/internal/handlers/rest/common"
	"ledger/internal/pkg/middlewares/auth"
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

// ServeHTTP location отдается только подписанному вызывающему из списка доступа.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := common.ShipmentID(r)
	if err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}

	location, err := h.service.GetDocumentLocation(r.Context(), auth.Caller(r.Context()), id)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, dto.DocumentLocationResponse{Location: location})
}
