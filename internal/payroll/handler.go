package payroll

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ems-project/ems-backend/internal/transport"
	"github.com/ems-project/ems-backend/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	AllSalaries() ([]*SalaryDTO, error)
	SalaryByEid(eid string) (*SalaryDTO, error)
	CreateSalary(dto SalaryDTO) (*SalaryDTO, error)
	UpdateSalary(eid string, dto SalaryDTO) (*SalaryDTO, error)
	DeleteSalary(eid string) error

	AllPayments() ([]*PaymentDTO, error)
	PaymentsByEmployee(eid string) ([]*PaymentDTO, error)
	PaymentByID(id string) (*PaymentDTO, error)
	CreatePayment(dto CreatePaymentDTO) (*PaymentDTO, error)
	UpdatePayment(id string, dto CreatePaymentDTO) (*PaymentDTO, error)
	DeletePayment(id string) error

	ProcessMassPayment(dto MassPaymentDTO) (*MassPaymentResult, error)
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

func (h *Handler) GetSalaries(w http.ResponseWriter, r *http.Request) {
	salaries, err := h.Service.AllSalaries()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, salaries)
}

func (h *Handler) GetSalary(w http.ResponseWriter, r *http.Request) {
	eid := chi.URLParam(r, "eid")

	salary, err := h.Service.SalaryByEid(eid)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, salary)
}

func (h *Handler) CreateSalary(w http.ResponseWriter, r *http.Request) {
	var dto SalaryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateSalary: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	salary, err := h.Service.CreateSalary(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, salary)
}

func (h *Handler) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	eid := chi.URLParam(r, "eid")

	var dto SalaryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateSalary: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	salary, err := h.Service.UpdateSalary(eid, dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, salary)
}

func (h *Handler) DeleteSalary(w http.ResponseWriter, r *http.Request) {
	eid := chi.URLParam(r, "eid")

	if err := h.Service.DeleteSalary(eid); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.AllPayments()
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, payments)
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payment, err := h.Service.PaymentByID(id)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, payment)
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var dto CreatePaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreatePayment: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, err := h.Service.CreatePayment(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, payment)
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto CreatePaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdatePayment: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, err := h.Service.UpdatePayment(id, dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, payment)
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeletePayment(id); err != nil {
		h.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetEmployeePayments(w http.ResponseWriter, r *http.Request) {
	eid := chi.URLParam(r, "eid")

	payments, err := h.Service.PaymentsByEmployee(eid)
	if err != nil {
		h.WriteError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, payments)
}

// MassPayment runs a payment batch. The response status reflects the batch
// outcome: 200 when at least one employee was paid, 400 when nobody was.
func (h *Handler) MassPayment(w http.ResponseWriter, r *http.Request) {
	var dto MassPaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("MassPayment: invalid request body", "error", err)
		h.WriteErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.ProcessMassPayment(dto)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	h.WriteJSON(w, status, result)
}
