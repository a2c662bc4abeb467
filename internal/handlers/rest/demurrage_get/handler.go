package demurrage_get

import (
	"net/http"

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

	record, err := h.service.GetDemurrageDetails(r.Context(), id)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, common.DemurrageToDTO(record))
}
