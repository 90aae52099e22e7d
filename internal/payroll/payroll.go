package payroll

import (
	"errors"
	"time"

	payrollDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/payroll"
)

// SalaryRecord is the per-employee salary breakdown. Money fields are nil when
// the stored column is NULL; contribution fields get derived from the basic
// salary when missing.
type SalaryRecord struct {
	Eid             string
	BasicSalary     *float64
	InternetCharges *float64
	Allowances      *float64
	Deductions      *float64
	EPFEmployee     *float64
	EPFEmployer     *float64
	ETFEmployer     *float64
	NetSalary       *float64
}

// Payment is a single salary disbursement. RowID is the storage surrogate key;
// callers address payments through the composite id (see paymentid.go).
type Payment struct {
	RowID    int64
	Eid      string
	Amount   *float64
	PaidDate *time.Time
}

// DisplayID returns the composite identifier exposed to API clients.
func (p *Payment) DisplayID() string {
	return EncodePaymentID(p.Eid, p.PaidDate)
}

var (
	ErrSalaryNotFound   = errors.New("salary record not found")
	ErrPaymentNotFound  = errors.New("payment record not found")
	ErrDuplicatePayment = errors.New("payment already exists for this date")
	ErrDuplicateRecord  = errors.New("record already exists")
)

// Repository defines data access for salary records and salary payments.
type Repository interface {
	AllSalaries() ([]*SalaryRecord, error)
	SalaryByEid(eid string) (*SalaryRecord, error)
	CreateSalary(rec *SalaryRecord) error
	UpdateSalary(rec *SalaryRecord) error
	DeleteSalary(eid string) error

	AllPayments() ([]*Payment, error)
	PaymentsByEid(eid string) ([]*Payment, error)
	PaymentByEidAndDate(eid string, date time.Time) (*Payment, error)
	LatestPaymentByEid(eid string) (*Payment, error)
	CreatePayment(p *Payment) error
	// CreatePaymentForDate inserts a payment for (eid, date) atomically and
	// returns ErrDuplicatePayment when one already exists.
	CreatePaymentForDate(eid string, amount *float64, date time.Time) error
	UpdatePayment(p *Payment) error
	DeletePayment(rowID int64) error
}

func SalaryToDataModel(r *SalaryRecord) *payrollDatamodel.Salary {
	return &payrollDatamodel.Salary{
		Eid:             r.Eid,
		BasicSalary:     r.BasicSalary,
		InternetCharges: r.InternetCharges,
		Allowances:      r.Allowances,
		Deductions:      r.Deductions,
		EPFEmployee:     r.EPFEmployee,
		EPFEmployer:     r.EPFEmployer,
		ETFEmployer:     r.ETFEmployer,
		NetSalary:       r.NetSalary,
	}
}

func SalaryFromDataModel(m *payrollDatamodel.Salary) *SalaryRecord {
	return &SalaryRecord{
		Eid:             m.Eid,
		BasicSalary:     m.BasicSalary,
		InternetCharges: m.InternetCharges,
		Allowances:      m.Allowances,
		Deductions:      m.Deductions,
		EPFEmployee:     m.EPFEmployee,
		EPFEmployer:     m.EPFEmployer,
		ETFEmployer:     m.ETFEmployer,
		NetSalary:       m.NetSalary,
	}
}

func PaymentToDataModel(p *Payment) *payrollDatamodel.SalaryPayment {
	return &payrollDatamodel.SalaryPayment{
		ID:       p.RowID,
		Eid:      p.Eid,
		Salary:   p.Amount,
		PaidDate: p.PaidDate,
	}
}

func PaymentFromDataModel(m *payrollDatamodel.SalaryPayment) *Payment {
	return &Payment{
		RowID:    m.ID,
		Eid:      m.Eid,
		Amount:   m.Salary,
		PaidDate: m.PaidDate,
	}
}

func PaymentsFromDataModel(ms []*payrollDatamodel.SalaryPayment) []*Payment {
	result := make([]*Payment, len(ms))
	for i, m := range ms {
		result[i] = PaymentFromDataModel(m)
	}
	return result
}
