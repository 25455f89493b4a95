package wheel

import (
	"errors"
	"net/http"
	"strconv"

	dto "prize_wheel/internal/api/dto/wheel"
	"prize_wheel/internal/converter"
	"prize_wheel/internal/model"
	"prize_wheel/internal/service"
	wheelServ "prize_wheel/internal/service/wheel"
	"prize_wheel/pkg/req"
	"prize_wheel/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.WheelService
}

type Handler struct {
	serv service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Setup(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SetupRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := h.serv.Setup(payload.Count)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(snap))
}

func (h *Handler) UpdatePrize(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "prize index must be an integer")
		return
	}

	payload, err := req.Decode[dto.UpdatePrizeRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Name == nil && payload.Probability == nil {
		resp.WriteError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	var snap model.Snapshot
	if payload.Name != nil {
		snap, err = h.serv.SetPrizeName(index, *payload.Name)
		if err != nil {
			writeServiceError(w, err)
			return
		}
	}
	if payload.Probability != nil {
		snap, err = h.serv.SetPrizeProbability(index, int(*payload.Probability))
		if err != nil {
			writeServiceError(w, err)
			return
		}
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(snap))
}

// Configure невалидная конфигурация не ошибка: клиент получает состояние с сообщением валидации
func (h *Handler) Configure(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ConfigureRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := h.serv.Configure(converter.ToPrizes(payload.Prizes))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(snap))
}

func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	snap, err := h.serv.Confirm()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(snap))
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.serv.Back()))
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.serv.Restart()))
}

func (h *Handler) Draw(w http.ResponseWriter, r *http.Request) {
	spin, ok := h.serv.RequestDraw()
	if !ok {
		resp.WriteError(w, http.StatusConflict, "draw is not available")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(spin))
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	result, ok := h.serv.CompleteSpin(chi.URLParam(r, "id"))
	if !ok {
		resp.WriteError(w, http.StatusConflict, "spin is not in progress")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToResultResponse(result))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.serv.State()))
}

func (h *Handler) Sectors(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSectorsResponse(h.serv.Sectors()))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wheelServ.ErrPrizeCount), errors.Is(err, wheelServ.ErrPrizeIndex):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, wheelServ.ErrWrongStep), errors.Is(err, wheelServ.ErrInvalidConfig):
		resp.WriteError(w, http.StatusConflict, err.Error())
	default:
		resp.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
