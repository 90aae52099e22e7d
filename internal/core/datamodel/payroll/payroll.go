package payroll

import "time"

// Salary holds one salary record per employee. Money columns are nullable
// because legacy rows may predate contribution derivation.
type Salary struct {
	Eid             string   `gorm:"column:eid;primaryKey"`
	BasicSalary     *float64 `gorm:"column:basic_salary"`
	InternetCharges *float64 `gorm:"column:internet_charges"`
	Allowances      *float64 `gorm:"column:allowances"`
	Deductions      *float64 `gorm:"column:deductions"`
	EPFEmployee     *float64 `gorm:"column:epf_employee"`
	EPFEmployer     *float64 `gorm:"column:epf_employer"`
	ETFEmployer     *float64 `gorm:"column:etf_employer"`
	NetSalary       *float64 `gorm:"column:net_salary"`
}

func (Salary) TableName() string {
	return "salary"
}

// SalaryPayment records a disbursement. The (eid, paid_date) pair is unique so
// a mass payment batch cannot pay the same employee twice for one date even
// under concurrent runs.
type SalaryPayment struct {
	ID       int64      `gorm:"primaryKey"`
	Eid      string     `gorm:"column:eid;uniqueIndex:idx_salary_payments_eid_paid_date;not null"`
	Salary   *float64   `gorm:"column:salary"`
	PaidDate *time.Time `gorm:"column:paid_date;type:date;uniqueIndex:idx_salary_payments_eid_paid_date"`
}

func (SalaryPayment) TableName() string {
	return "salary_payments"
}
