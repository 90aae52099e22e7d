package leave

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ems-project/ems-backend/internal/transport"
	"github.com/ems-project/ems-backend/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	AllTypes() ([]*LeaveType, error)
	TypeByLid(lid string) (*LeaveType, error)
	CreateType(dto LeaveTypeDTO) (*LeaveType, error)
	UpdateType(lid string, dto LeaveTypeDTO) (*LeaveType, error)
	DeleteType(lid string) error

	AllBalances() ([]*Balance, error)
	BalanceByEid(eid string) (*Balance, error)
	CreateBalance(dto BalanceDTO) (*Balance, error)
	UpdateBalance(eid string, dto BalanceDTO) (*Balance, error)
	DeleteBalance(eid string) error

	AllApplications() ([]*ApplicationDTO, error)
	ApplicationsByEmployee(eid string) ([]*ApplicationDTO, error)
	ApplicationByLid(lid string) (*ApplicationDTO, error)
	CreateApplication(dto ApplicationDTO) (*ApplicationDTO, error)
	UpdateApplication(lid string, dto ApplicationDTO) (*ApplicationDTO, error)
	DeleteApplication(lid string) error
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

func (h *Handler) GetTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.AllTypes()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, types)
}

func (h *Handler) GetType(w http.ResponseWriter, r *http.Request) {
	t, err := h.Service.TypeByLid(chi.URLParam(r, "lid"))
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) CreateType(w http.ResponseWriter, r *http.Request) {
	var dto LeaveTypeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateType: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.CreateType(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) UpdateType(w http.ResponseWriter, r *http.Request) {
	var dto LeaveTypeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateType: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.UpdateType(chi.URLParam(r, "lid"), dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteType(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteType(chi.URLParam(r, "lid")); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.Service.AllBalances()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, balances)
}

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	b, err := h.Service.BalanceByEid(chi.URLParam(r, "eid"))
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) CreateBalance(w http.ResponseWriter, r *http.Request) {
	var dto BalanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateBalance: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.CreateBalance(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, b)
}

func (h *Handler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	var dto BalanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateBalance: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.UpdateBalance(chi.URLParam(r, "eid"), dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) DeleteBalance(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteBalance(chi.URLParam(r, "eid")); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Service.AllApplications()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, apps)
}

func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.Service.ApplicationByLid(chi.URLParam(r, "lid"))
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, app)
}

func (h *Handler) GetEmployeeApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Service.ApplicationsByEmployee(chi.URLParam(r, "eid"))
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, apps)
}

func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var dto ApplicationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateApplication: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.Service.CreateApplication(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, app)
}

func (h *Handler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	var dto ApplicationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateApplication: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.Service.UpdateApplication(chi.URLParam(r, "lid"), dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, app)
}

func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteApplication(chi.URLParam(r, "lid")); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
