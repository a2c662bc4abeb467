package shipment_post

import (
	"net/http"

	"ledger/internal/entities"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.ShipmentCreate
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}

	carrier, err := entities.ParseAddress(req.Carrier)
	if err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}
	consignee, err := entities.ParseAddress(req.Consignee)
	if err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}

	id, err := h.service.CreateShipment(r.Context(), auth.Caller(r.Context()), carrier, consignee)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}

	common.WriteJSON(w, h.log, http.StatusCreated, dto.ShipmentCreateResponse{Id: id})
}
