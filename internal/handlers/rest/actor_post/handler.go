package actor_post

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
	var req dto.ActorRegister
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}

	identity, err := entities.ParseAddress(req.Identity)
	if err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}
	role := entities.Role(req.Role)

	err = h.service.RegisterActor(r.Context(), auth.Caller(r.Context()), identity, role)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}

	common.WriteJSON(w, h.log, http.StatusCreated, dto.Actor{
		Identity:   identity.String(),
		Registered: true,
		Role:       dto.ActorRole(role),
	})
}
