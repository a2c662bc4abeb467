package events_get

import (
	"net/http"
	"strconv"

	"ledger/internal/generated/dto"
	"ledger/internal/handlers/rest/common"
	"ledger/internal/pkg/eventcodec"
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
	params, err := parseParams(r)
	if err != nil {
		common.WriteBadRequest(w, h.log, err.Error())
		return
	}

	var after int64
	if params.After != nil {
		after = *params.After
	}
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	events, err := h.service.List(r.Context(), after, limit)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}

	nextAfter := after
	if len(events) > 0 {
		nextAfter = events[len(events)-1].Sequence
	}

	common.WriteJSON(w, h.log, http.StatusOK, dto.EventsPage{
		Events:    eventcodec.ToDTOs(events),
		NextAfter: nextAfter,
	})
}

func parseParams(r *http.Request) (dto.GetEventsParams, error) {
	var params dto.GetEventsParams
	query := r.URL.Query()

	if raw := query.Get("after"); raw != "" {
		after, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return params, err
		}
		params.After = &after
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return params, err
		}
		params.Limit = &limit
	}
	return params, nil
}
