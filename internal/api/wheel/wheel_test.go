package wheel

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "prize_wheel/internal/api/dto/wheel"
	"prize_wheel/internal/config/env"
	"prize_wheel/internal/logger"
	"prize_wheel/internal/repository/draw_stats_repo"
	wheelServ "prize_wheel/internal/service/wheel"
	"prize_wheel/pkg/resp"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constRandom float64

func (c constRandom) Float64() float64 { return float64(c) }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := env.DefaultWheelConfig()
	serv := wheelServ.NewWheelService(
		cfg,
		draw_stats_repo.NewDrawStatsRepository(cfg.StatsWindowSize(), cfg.MaxFrequencyDeviation()),
		logger.Discard(),
		wheelServ.WithRandom(constRandom(0.5)),
		wheelServ.WithIDGenerator(func() string { return "spin-1" }),
	)
	t.Cleanup(serv.Close)

	h := NewHandler(HandlerDeps{Serv: serv})
	r := chi.NewRouter()
	r.Route("/wheel", func(rr chi.Router) {
		rr.Post("/setup", h.Setup)
		rr.Put("/prizes/{index}", h.UpdatePrize)
		rr.Post("/configure", h.Configure)
		rr.Post("/confirm", h.Confirm)
		rr.Post("/back", h.Back)
		rr.Post("/restart", h.Restart)
		rr.Post("/draw", h.Draw)
		rr.Post("/spins/{id}/complete", h.Complete)
		rr.Get("/state", h.State)
		rr.Get("/sectors", h.Sectors)
		rr.Get("/stats", h.Stats)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

const validPrizes = `{"prizes":[{"name":"A","probability":20},{"name":"B","probability":30},{"name":"C","probability":50}]}`

func TestHandler_FullRound(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/wheel/setup", `{"count":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[dto.StateResponse](t, w)
	assert.Equal(t, "config", state.Step)
	assert.Len(t, state.Prizes, 3)

	w = do(t, h, http.MethodPost, "/wheel/configure", validPrizes)
	require.Equal(t, http.StatusOK, w.Code)
	state = decode[dto.StateResponse](t, w)
	assert.Equal(t, "game", state.Step)
	assert.True(t, state.DrawEnabled)
	assert.Equal(t, 0.0, state.Wheel.CurrentRotation)

	w = do(t, h, http.MethodPost, "/wheel/draw", "")
	require.Equal(t, http.StatusOK, w.Code)
	spin := decode[dto.SpinResponse](t, w)
	assert.Equal(t, "spin-1", spin.ID)
	assert.Equal(t, int64(6000), spin.DurationMs)
	assert.Greater(t, spin.TargetAngle, 3600.0-60)

	w = do(t, h, http.MethodPost, "/wheel/draw", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/wheel/spins/other/complete", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/wheel/spins/spin-1/complete", "")
	require.Equal(t, http.StatusOK, w.Code)
	result := decode[dto.ResultResponse](t, w)
	assert.Equal(t, spin.WinnerIndex, result.WinnerIndex)
	assert.Contains(t, result.Message, "Congratulations! You won: ["+result.PrizeName+"]")

	w = do(t, h, http.MethodGet, "/wheel/state", "")
	state = decode[dto.StateResponse](t, w)
	assert.False(t, state.Wheel.IsSpinning)
	assert.True(t, state.DrawEnabled)
	assert.Equal(t, spin.TargetAngle, state.Wheel.CurrentRotation)

	w = do(t, h, http.MethodGet, "/wheel/stats", "")
	stats := decode[dto.StatsResponse](t, w)
	assert.Equal(t, 1, stats.TotalDraws)
}

func TestHandler_SetupValidation(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/wheel/setup", `{"count":11}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errResp := decode[resp.ErrorResponse](t, w)
	assert.Contains(t, errResp.Error, "prize count out of range")

	w = do(t, h, http.MethodPost, "/wheel/setup", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/wheel/setup", `{"count":3,"extra":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdatePrize(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPut, "/wheel/prizes/0", `{"name":"X"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	do(t, h, http.MethodPost, "/wheel/setup", `{"count":3}`)

	w = do(t, h, http.MethodPut, "/wheel/prizes/x", `{"name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPut, "/wheel/prizes/5", `{"name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPut, "/wheel/prizes/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPut, "/wheel/prizes/1", `{"name":"Car","probability":"abc"}`)
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[dto.StateResponse](t, w)
	assert.Equal(t, dto.Prize{Name: "Car", Probability: 0}, state.Prizes[1])
	assert.False(t, state.Validation.Valid)
}

func TestHandler_ConfirmInvalidConfig(t *testing.T) {
	h := newTestRouter(t)

	do(t, h, http.MethodPost, "/wheel/setup", `{"count":3}`)
	do(t, h, http.MethodPut, "/wheel/prizes/0", `{"probability":90}`)

	w := do(t, h, http.MethodPost, "/wheel/confirm", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/wheel/draw", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfigureInvalidStaysOnConfig(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/wheel/configure",
		`{"prizes":[{"name":"A","probability":50},{"name":"B","probability":30},{"name":"C","probability":30}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[dto.StateResponse](t, w)
	assert.Equal(t, "config", state.Step)
	assert.Equal(t, 110, state.Validation.Total)
	assert.Equal(t, "Total probability must be 100%, current total: 110%", state.Validation.Message)
	assert.False(t, state.DrawEnabled)
}

func TestHandler_SectorsAndRestart(t *testing.T) {
	h := newTestRouter(t)

	do(t, h, http.MethodPost, "/wheel/configure", validPrizes)

	w := do(t, h, http.MethodGet, "/wheel/sectors", "")
	require.Equal(t, http.StatusOK, w.Code)
	sectors := decode[[]dto.SectorResponse](t, w)
	require.Len(t, sectors, 3)
	assert.Equal(t, 120.0, sectors[1].CenterAngle)

	w = do(t, h, http.MethodPost, "/wheel/restart", "")
	state := decode[dto.StateResponse](t, w)
	assert.Equal(t, "setup", state.Step)
	assert.Empty(t, state.Prizes)
}
