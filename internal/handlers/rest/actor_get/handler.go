package actor_get

import (
	"net/http"

	"ledger/internal/entities"
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
	identity, err := common.PathAddress(r, "address")
	if err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}

	role, err := h.service.GetActorRole(r.Context(), identity)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, dto.Actor{
		Identity:   identity.String(),
		Registered: role != entities.RoleNone,
		Role:       dto.ActorRole(role),
	})
}
