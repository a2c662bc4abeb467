package demurrage_post

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
	id, err := common.ShipmentID(r)
	if err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}

	var req dto.DemurrageCreate
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}
	payee, err := entities.ParseAddress(req.Payee)
	if err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}

	err = h.service.RecordDemurrage(r.Context(), auth.Caller(r.Context()), id, req.Amount, payee)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
