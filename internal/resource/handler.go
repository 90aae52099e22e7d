package resource

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ems-project/ems-backend/internal/transport"
	"github.com/ems-project/ems-backend/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	AllAllocations() ([]*AllocationDTO, error)
	AllocationsByEmployee(eid string) ([]*AllocationDTO, error)
	AllocationByID(id int64) (*AllocationDTO, error)
	CreateAllocation(dto AllocationDTO) (*AllocationDTO, error)
	UpdateAllocation(id int64, dto AllocationDTO) (*AllocationDTO, error)
	DeleteAllocation(id int64) error
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

func (h *Handler) GetAllocations(w http.ResponseWriter, r *http.Request) {
	allocations, err := h.Service.AllAllocations()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, allocations)
}

func (h *Handler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("GetAllocation: invalid allocation ID", "id", idStr)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid allocation ID")
		return
	}

	a, err := h.Service.AllocationByID(id)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) GetEmployeeAllocations(w http.ResponseWriter, r *http.Request) {
	allocations, err := h.Service.AllocationsByEmployee(chi.URLParam(r, "eid"))
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, allocations)
}

func (h *Handler) CreateAllocation(w http.ResponseWriter, r *http.Request) {
	var dto AllocationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateAllocation: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.CreateAllocation(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) UpdateAllocation(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("UpdateAllocation: invalid allocation ID", "id", idStr)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid allocation ID")
		return
	}

	var dto AllocationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateAllocation: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.UpdateAllocation(id, dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) DeleteAllocation(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("DeleteAllocation: invalid allocation ID", "id", idStr)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid allocation ID")
		return
	}

	if err := h.Service.DeleteAllocation(id); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
