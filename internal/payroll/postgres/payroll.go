package postgres

import (
	"errors"
	"time"

	payrollDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/payroll"
	"github.com/ems-project/ems-backend/internal/payroll"
	"gorm.io/gorm"
)

// PayrollRepository implements payroll.Repository using GORM.
type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) payroll.Repository {
	return &PayrollRepository{db: db}
}

func (r *PayrollRepository) AllSalaries() ([]*payroll.SalaryRecord, error) {
	var models []*payrollDatamodel.Salary
	if err := r.db.Order("eid").Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]*payroll.SalaryRecord, len(models))
	for i, m := range models {
		records[i] = payroll.SalaryFromDataModel(m)
	}
	return records, nil
}

func (r *PayrollRepository) SalaryByEid(eid string) (*payroll.SalaryRecord, error) {
	var m payrollDatamodel.Salary
	err := r.db.Where("eid = ?", eid).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payroll.ErrSalaryNotFound
		}
		return nil, err
	}
	return payroll.SalaryFromDataModel(&m), nil
}

func (r *PayrollRepository) CreateSalary(rec *payroll.SalaryRecord) error {
	err := r.db.Create(payroll.SalaryToDataModel(rec)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return payroll.ErrDuplicateRecord
	}
	return err
}

func (r *PayrollRepository) UpdateSalary(rec *payroll.SalaryRecord) error {
	m := payroll.SalaryToDataModel(rec)
	// Save writes every column so cleared fields become NULL again.
	return r.db.Save(m).Error
}

func (r *PayrollRepository) DeleteSalary(eid string) error {
	return r.db.Where("eid = ?", eid).Delete(&payrollDatamodel.Salary{}).Error
}

func (r *PayrollRepository) AllPayments() ([]*payroll.Payment, error) {
	var models []*payrollDatamodel.SalaryPayment
	if err := r.db.Order("eid, paid_date").Find(&models).Error; err != nil {
		return nil, err
	}
	return payroll.PaymentsFromDataModel(models), nil
}

func (r *PayrollRepository) PaymentsByEid(eid string) ([]*payroll.Payment, error) {
	var models []*payrollDatamodel.SalaryPayment
	err := r.db.Where("eid = ?", eid).
		Order("paid_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return payroll.PaymentsFromDataModel(models), nil
}

func (r *PayrollRepository) PaymentByEidAndDate(eid string, date time.Time) (*payroll.Payment, error) {
	var m payrollDatamodel.SalaryPayment
	err := r.db.Where("eid = ? AND paid_date = ?", eid, date).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payroll.ErrPaymentNotFound
		}
		return nil, err
	}
	return payroll.PaymentFromDataModel(&m), nil
}

// LatestPaymentByEid resolves an unknown-date composite id to the employee's
// most recent payment.
func (r *PayrollRepository) LatestPaymentByEid(eid string) (*payroll.Payment, error) {
	var m payrollDatamodel.SalaryPayment
	err := r.db.Where("eid = ?", eid).
		Order("paid_date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payroll.ErrPaymentNotFound
		}
		return nil, err
	}
	return payroll.PaymentFromDataModel(&m), nil
}

func (r *PayrollRepository) CreatePayment(p *payroll.Payment) error {
	m := payroll.PaymentToDataModel(p)
	err := r.db.Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return payroll.ErrDuplicatePayment
	}
	if err != nil {
		return err
	}
	p.RowID = m.ID
	return nil
}

// CreatePaymentForDate checks for an existing (eid, date) payment and inserts
// inside one transaction. The unique index on (eid, paid_date) closes the
// remaining race window: a concurrent insert surfaces as ErrDuplicatePayment
// instead of a second row.
func (r *PayrollRepository) CreatePaymentForDate(eid string, amount *float64, date time.Time) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&payrollDatamodel.SalaryPayment{}).
			Where("eid = ? AND paid_date = ?", eid, date).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return payroll.ErrDuplicatePayment
		}

		return tx.Create(&payrollDatamodel.SalaryPayment{
			Eid:      eid,
			Salary:   amount,
			PaidDate: &date,
		}).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return payroll.ErrDuplicatePayment
	}
	return err
}

func (r *PayrollRepository) UpdatePayment(p *payroll.Payment) error {
	err := r.db.Model(&payrollDatamodel.SalaryPayment{}).
		Where("id = ?", p.RowID).
		Updates(map[string]interface{}{
			"eid":       p.Eid,
			"salary":    p.Amount,
			"paid_date": p.PaidDate,
		}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return payroll.ErrDuplicatePayment
	}
	return err
}

func (r *PayrollRepository) DeletePayment(rowID int64) error {
	return r.db.Where("id = ?", rowID).Delete(&payrollDatamodel.SalaryPayment{}).Error
}
