package training

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ems-project/ems-backend/internal/transport"
	"github.com/ems-project/ems-backend/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	AllBudgets() ([]*BudgetDTO, error)
	BudgetByEid(eid string) (*BudgetDTO, error)
	CreateBudget(dto BudgetDTO) (*BudgetDTO, error)
	UpdateBudget(eid string, dto BudgetDTO) (*BudgetDTO, error)
	DeleteBudget(eid string) error

	AllRequests() ([]*RequestDTO, error)
	RequestByID(id string) (*RequestDTO, error)
	CreateRequest(dto CreateRequestDTO) (*RequestDTO, error)
	UpdateRequest(id string, dto UpdateRequestDTO) (*RequestDTO, error)
	DeleteRequest(id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.Service.AllBudgets()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, budgets)
}

func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	budget, err := h.Service.BudgetByEid(chi.URLParam(r, "eid"))
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, budget)
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateBudget: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	budget, err := h.Service.CreateBudget(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, budget)
}

func (h *Handler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateBudget: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	budget, err := h.Service.UpdateBudget(chi.URLParam(r, "eid"), dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, budget)
}

func (h *Handler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteBudget(chi.URLParam(r, "eid")); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.AllRequests()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.Service.RequestByID(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var dto CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateRequest: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.CreateRequest(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	var dto UpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateRequest: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.UpdateRequest(chi.URLParam(r, "id"), dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteRequest(chi.URLParam(r, "id")); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
