package payroll

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Money values travel as strings on the wire; the administrative UI submits
// form values verbatim. Parsing happens at the DTO boundary.

const dateLayout = "2006-01-02"

type SalaryDTO struct {
	Eid             string `json:"eid"`
	BasicSalary     string `json:"basic_salary"`
	InternetCharges string `json:"internet_charges"`
	Allowances      string `json:"allowances"`
	Deductions      string `json:"deductions"`
	EPFEmployee     string `json:"epf_employee"`
	EPFEmployer     string `json:"epf_employer"`
	ETFEmployer     string `json:"etf_employer"`
	NetSalary       string `json:"net_salary"`
}

func (dto SalaryDTO) Validate() error {
	if dto.Eid == "" {
		return errors.New("eid is required")
	}
	fields := map[string]string{
		"basic_salary":     dto.BasicSalary,
		"internet_charges": dto.InternetCharges,
		"allowances":       dto.Allowances,
		"deductions":       dto.Deductions,
		"epf_employee":     dto.EPFEmployee,
		"epf_employer":     dto.EPFEmployer,
		"etf_employer":     dto.ETFEmployer,
		"net_salary":       dto.NetSalary,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%s is not a valid amount: %q", name, value)
		}
	}
	return nil
}

func (dto SalaryDTO) ToRecord() *SalaryRecord {
	return &SalaryRecord{
		Eid:             dto.Eid,
		BasicSalary:     parseAmount(dto.BasicSalary),
		InternetCharges: parseAmount(dto.InternetCharges),
		Allowances:      parseAmount(dto.Allowances),
		Deductions:      parseAmount(dto.Deductions),
		EPFEmployee:     parseAmount(dto.EPFEmployee),
		EPFEmployer:     parseAmount(dto.EPFEmployer),
		ETFEmployer:     parseAmount(dto.ETFEmployer),
		NetSalary:       parseAmount(dto.NetSalary),
	}
}

func SalaryDTOFromRecord(r *SalaryRecord) *SalaryDTO {
	return &SalaryDTO{
		Eid:             r.Eid,
		BasicSalary:     formatAmountPtr(r.BasicSalary),
		InternetCharges: formatAmountPtr(r.InternetCharges),
		Allowances:      formatAmountPtr(r.Allowances),
		Deductions:      formatAmountPtr(r.Deductions),
		EPFEmployee:     formatAmountPtr(r.EPFEmployee),
		EPFEmployer:     formatAmountPtr(r.EPFEmployer),
		ETFEmployer:     formatAmountPtr(r.ETFEmployer),
		NetSalary:       formatAmountPtr(r.NetSalary),
	}
}

type PaymentDTO struct {
	ID       string `json:"id"`
	Eid      string `json:"eid"`
	Salary   string `json:"salary"`
	PaidDate string `json:"paid_date"`
}

func PaymentDTOFromPayment(p *Payment) *PaymentDTO {
	dto := &PaymentDTO{
		ID:     p.DisplayID(),
		Eid:    p.Eid,
		Salary: "0.00",
	}
	if p.Amount != nil {
		dto.Salary = FormatAmount(*p.Amount)
	}
	if p.PaidDate != nil {
		dto.PaidDate = p.PaidDate.Format(dateLayout)
	}
	return dto
}

func PaymentDTOsFromPayments(payments []*Payment) []*PaymentDTO {
	result := make([]*PaymentDTO, len(payments))
	for i, p := range payments {
		result[i] = PaymentDTOFromPayment(p)
	}
	return result
}

type CreatePaymentDTO struct {
	Eid      string `json:"eid"`
	Salary   string `json:"salary"`
	PaidDate string `json:"paid_date"`
}

func (dto CreatePaymentDTO) Validate() error {
	if dto.Eid == "" {
		return errors.New("eid is required")
	}
	if dto.Salary != "" {
		if _, err := strconv.ParseFloat(dto.Salary, 64); err != nil {
			return fmt.Errorf("salary is not a valid amount: %q", dto.Salary)
		}
	}
	if dto.PaidDate != "" {
		if _, err := time.Parse(dateLayout, dto.PaidDate); err != nil {
			return fmt.Errorf("paid_date is not a valid date: %q", dto.PaidDate)
		}
	}
	return nil
}

func (dto CreatePaymentDTO) ToPayment() *Payment {
	p := &Payment{
		Eid:    dto.Eid,
		Amount: parseAmount(dto.Salary),
	}
	if dto.PaidDate != "" {
		if d, err := time.Parse(dateLayout, dto.PaidDate); err == nil {
			p.PaidDate = &d
		}
	}
	return p
}

// MassPaymentDTO is the mass payment request. A nil employee list means every
// employee with a salary record; an explicit empty list processes nobody.
type MassPaymentDTO struct {
	EmployeeIDs []string `json:"employee_ids"`
	PaymentDate string   `json:"payment_date"`
}

func (dto MassPaymentDTO) Validate() error {
	if dto.PaymentDate != "" {
		if _, err := time.Parse(dateLayout, dto.PaymentDate); err != nil {
			return fmt.Errorf("payment_date is not a valid date: %q", dto.PaymentDate)
		}
	}
	return nil
}

type FailedPayment struct {
	Eid   string `json:"eid"`
	Error string `json:"error"`
}

// MassPaymentResult reports the batch outcome item by item. Success means at
// least one payment went through; partial failure is a valid terminal state.
type MassPaymentResult struct {
	Success        bool            `json:"success"`
	BatchID        string          `json:"batch_id"`
	SuccessCount   int             `json:"success_count"`
	FailedCount    int             `json:"failed_count"`
	FailedPayments []FailedPayment `json:"failed_payments"`
	TotalAmount    float64         `json:"total_amount"`
	PaymentDate    string          `json:"payment_date"`
}

// Per-item failure reasons reported in mass payment outcomes.
const (
	FailureNoSalaryRecord   = "No salary record found for this employee"
	FailureDuplicatePayment = "Payment already exists for this date"
	FailureNoNetSalary      = "No net salary on record for this employee"
)

func parseAmount(value string) *float64 {
	if value == "" {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formatAmountPtr(value *float64) string {
	if value == nil {
		return ""
	}
	return FormatAmount(*value)
}
