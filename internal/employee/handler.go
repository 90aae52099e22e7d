package employee

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ems-project/ems-backend/internal/transport"
	"github.com/ems-project/ems-backend/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	AllDepartments() ([]*Department, error)
	DepartmentByDno(dno string) (*Department, error)
	CreateDepartment(dto DepartmentDTO) (*Department, error)
	UpdateDepartment(dno string, dto DepartmentDTO) (*Department, error)
	DeleteDepartment(dno string) error

	AllDetails() ([]*DetailDTO, error)
	DetailByEid(eid string) (*DetailDTO, error)
	CreateDetail(dto DetailDTO) (*DetailDTO, error)
	UpdateDetail(eid string, dto DetailDTO) (*DetailDTO, error)
	DeleteDetail(eid string) error

	AllBankAccounts() ([]*BankAccount, error)
	BankAccountByEid(eid string) (*BankAccount, error)
	CreateBankAccount(dto BankAccountDTO) (*BankAccount, error)
	UpdateBankAccount(eid string, dto BankAccountDTO) (*BankAccount, error)
	DeleteBankAccount(eid string) error
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

func (h *Handler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.AllDepartments()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, departments)
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	d, err := h.Service.DepartmentByDno(chi.URLParam(r, "dno"))
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var dto DepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateDepartment: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.Service.CreateDepartment(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, d)
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var dto DepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateDepartment: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.Service.UpdateDepartment(chi.URLParam(r, "dno"), dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteDepartment(chi.URLParam(r, "dno")); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.Service.AllDetails()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) GetDetail(w http.ResponseWriter, r *http.Request) {
	d, err := h.Service.DetailByEid(chi.URLParam(r, "eid"))
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) CreateDetail(w http.ResponseWriter, r *http.Request) {
	var dto DetailDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateDetail: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.Service.CreateDetail(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, d)
}

func (h *Handler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	var dto DetailDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateDetail: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.Service.UpdateDetail(chi.URLParam(r, "eid"), dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) DeleteDetail(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteDetail(chi.URLParam(r, "eid")); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetBankAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Service.AllBankAccounts()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, accounts)
}

func (h *Handler) GetBankAccount(w http.ResponseWriter, r *http.Request) {
	a, err := h.Service.BankAccountByEid(chi.URLParam(r, "eid"))
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) CreateBankAccount(w http.ResponseWriter, r *http.Request) {
	var dto BankAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateBankAccount: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.CreateBankAccount(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) UpdateBankAccount(w http.ResponseWriter, r *http.Request) {
	var dto BankAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateBankAccount: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.UpdateBankAccount(chi.URLParam(r, "eid"), dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) DeleteBankAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteBankAccount(chi.URLParam(r, "eid")); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
