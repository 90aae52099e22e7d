package postgres

import (
	"errors"

	employeeDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/employee"
	"github.com/ems-project/ems-backend/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements employee.Repository using GORM.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) AllDepartments() ([]*employee.Department, error) {
	var models []*employeeDatamodel.Department
	if err := r.db.Order("department_number").Find(&models).Error; err != nil {
		return nil, err
	}

	departments := make([]*employee.Department, len(models))
	for i, m := range models {
		departments[i] = employee.DepartmentFromDataModel(m)
	}
	return departments, nil
}

func (r *EmployeeRepository) DepartmentByDno(dno string) (*employee.Department, error) {
	var m employeeDatamodel.Department
	err := r.db.Where("department_number = ?", dno).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrDepartmentNotFound
		}
		return nil, err
	}
	return employee.DepartmentFromDataModel(&m), nil
}

func (r *EmployeeRepository) CreateDepartment(d *employee.Department) error {
	err := r.db.Create(employee.DepartmentToDataModel(d)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employee.ErrDuplicateRecord
	}
	return err
}

func (r *EmployeeRepository) UpdateDepartment(d *employee.Department) error {
	return r.db.Save(employee.DepartmentToDataModel(d)).Error
}

func (r *EmployeeRepository) DeleteDepartment(dno string) error {
	return r.db.Where("department_number = ?", dno).Delete(&employeeDatamodel.Department{}).Error
}

func (r *EmployeeRepository) AllDetails() ([]*employee.Detail, error) {
	var models []*employeeDatamodel.EmployeeDetail
	if err := r.db.Order("eid").Find(&models).Error; err != nil {
		return nil, err
	}

	details := make([]*employee.Detail, len(models))
	for i, m := range models {
		details[i] = employee.DetailFromDataModel(m)
	}
	return details, nil
}

func (r *EmployeeRepository) DetailByEid(eid string) (*employee.Detail, error) {
	var m employeeDatamodel.EmployeeDetail
	err := r.db.Where("eid = ?", eid).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee.DetailFromDataModel(&m), nil
}

func (r *EmployeeRepository) CreateDetail(d *employee.Detail) error {
	err := r.db.Create(employee.DetailToDataModel(d)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employee.ErrDuplicateRecord
	}
	return err
}

func (r *EmployeeRepository) UpdateDetail(d *employee.Detail) error {
	return r.db.Save(employee.DetailToDataModel(d)).Error
}

func (r *EmployeeRepository) DeleteDetail(eid string) error {
	return r.db.Where("eid = ?", eid).Delete(&employeeDatamodel.EmployeeDetail{}).Error
}

func (r *EmployeeRepository) AllBankAccounts() ([]*employee.BankAccount, error) {
	var models []*employeeDatamodel.BankAccount
	if err := r.db.Order("eid").Find(&models).Error; err != nil {
		return nil, err
	}

	accounts := make([]*employee.BankAccount, len(models))
	for i, m := range models {
		accounts[i] = employee.BankAccountFromDataModel(m)
	}
	return accounts, nil
}

func (r *EmployeeRepository) BankAccountByEid(eid string) (*employee.BankAccount, error) {
	var m employeeDatamodel.BankAccount
	err := r.db.Where("eid = ?", eid).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrBankAccountNotFound
		}
		return nil, err
	}
	return employee.BankAccountFromDataModel(&m), nil
}

func (r *EmployeeRepository) CreateBankAccount(a *employee.BankAccount) error {
	err := r.db.Create(employee.BankAccountToDataModel(a)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employee.ErrDuplicateRecord
	}
	return err
}

func (r *EmployeeRepository) UpdateBankAccount(a *employee.BankAccount) error {
	return r.db.Save(employee.BankAccountToDataModel(a)).Error
}

func (r *EmployeeRepository) DeleteBankAccount(eid string) error {
	return r.db.Where("eid = ?", eid).Delete(&employeeDatamodel.BankAccount{}).Error
}
