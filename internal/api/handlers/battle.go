package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dom/battle-service/internal/domain"
	"github.com/dom/battle-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const serviceMessage = "Battle Service API"

var serviceEndpoints = map[string]string{
	"start_battle":  "POST /battle/start",
	"get_result":    "GET /battle/{id}",
	"service_info":  "GET /battle/",
	"battle_events": "GET /battle/ws",
}

type BattleHandler struct {
	battleService *service.BattleService
	validate      *validator.Validate
}

func NewBattleHandler(battleService *service.BattleService) *BattleHandler {
	return &BattleHandler{
		battleService: battleService,
		validate:      NewValidator(),
	}
}

type StartBattleResponse struct {
	BattleID string `json:"battle_id"`
}

type ServiceInfoResponse struct {
	Message      string            `json:"message"`
	Endpoints    map[string]string `json:"endpoints"`
	TotalBattles int64             `json:"total_battles"`
}

func (h *BattleHandler) Start(w http.ResponseWriter, r *http.Request) {
	p1, p2, err := decodeStartBattleRequest(r, h.validate)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: verr.Fields})
			return
		}
		log.Printf("ERROR [battle.Start]: %v", err)
		writeInternalError(w)
		return
	}

	battleID, err := h.battleService.CreateBattle(r.Context(), p1, p2)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPower) {
			writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Detail: []domain.FieldError{{Field: "power", Message: err.Error()}},
			})
			return
		}
		log.Printf("ERROR [battle.Start]: %v", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, StartBattleResponse{BattleID: battleID})
}

func (h *BattleHandler) Get(w http.ResponseWriter, r *http.Request) {
	battleID := chi.URLParam(r, "battleID")

	battle, err := h.battleService.GetBattle(r.Context(), battleID)
	if err != nil {
		if errors.Is(err, domain.ErrBattleNotFound) {
			writeError(w, http.StatusNotFound, "battle not found")
			return
		}
		log.Printf("ERROR [battle.Get] battleID=%s: %v", battleID, err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, battle)
}

func (h *BattleHandler) Info(w http.ResponseWriter, r *http.Request) {
	total, err := h.battleService.CountBattles(r.Context())
	if err != nil {
		log.Printf("ERROR [battle.Info]: %v", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, ServiceInfoResponse{
		Message:      serviceMessage,
		Endpoints:    serviceEndpoints,
		TotalBattles: total,
	})
}
