package employee

import (
	"errors"
	"time"

	employeeDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/employee"
)

type Department struct {
	Dno       string `json:"dno"`
	Dname     string `json:"dname"`
	NoOfEmp   int    `json:"no_of_emp"`
	Dlocation string `json:"dlocation"`
}

// Detail is the denormalized employee profile the administrative UI works
// with.
type Detail struct {
	Eid             string
	FullName        string
	InitName        *string
	Gender          string
	DOB             *time.Time
	MaritalStatus   string
	Address         *string
	Country         string
	Designation     string
	EmployeeType    string
	Department      string
	Status          string
	UserType        string
	Degree          *string
	University      *string
	EducationLevel  *string
	StartedYear     *int
	CompletedYear   *int
	EducationStatus *string
	Email           string
	EmailType       string
	Phone           *string
	PhoneType       *string
	Image           *string
}

type BankAccount struct {
	Eid               string  `json:"eid"`
	AccountHolderName *string `json:"account_holder_name"`
	AccountNo         *string `json:"account_no"`
	BankName          *string `json:"bank_name"`
	BranchName        *string `json:"branch_name"`
}

var (
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrBankAccountNotFound = errors.New("bank account not found")
	ErrDuplicateRecord     = errors.New("record already exists")
)

// Repository defines data access for departments, employee details and bank
// accounts.
type Repository interface {
	AllDepartments() ([]*Department, error)
	DepartmentByDno(dno string) (*Department, error)
	CreateDepartment(d *Department) error
	UpdateDepartment(d *Department) error
	DeleteDepartment(dno string) error

	AllDetails() ([]*Detail, error)
	DetailByEid(eid string) (*Detail, error)
	CreateDetail(d *Detail) error
	UpdateDetail(d *Detail) error
	DeleteDetail(eid string) error

	AllBankAccounts() ([]*BankAccount, error)
	BankAccountByEid(eid string) (*BankAccount, error)
	CreateBankAccount(a *BankAccount) error
	UpdateBankAccount(a *BankAccount) error
	DeleteBankAccount(eid string) error
}

func DepartmentToDataModel(d *Department) *employeeDatamodel.Department {
	return &employeeDatamodel.Department{
		Dno:       d.Dno,
		Dname:     d.Dname,
		NoOfEmp:   d.NoOfEmp,
		Dlocation: d.Dlocation,
	}
}

func DepartmentFromDataModel(m *employeeDatamodel.Department) *Department {
	return &Department{
		Dno:       m.Dno,
		Dname:     m.Dname,
		NoOfEmp:   m.NoOfEmp,
		Dlocation: m.Dlocation,
	}
}

func DetailToDataModel(d *Detail) *employeeDatamodel.EmployeeDetail {
	return &employeeDatamodel.EmployeeDetail{
		Eid:             d.Eid,
		FullName:        d.FullName,
		InitName:        d.InitName,
		Gender:          d.Gender,
		DOB:             d.DOB,
		MaritalStatus:   d.MaritalStatus,
		Address:         d.Address,
		Country:         d.Country,
		Designation:     d.Designation,
		EmployeeType:    d.EmployeeType,
		Department:      d.Department,
		Status:          d.Status,
		UserType:        d.UserType,
		Degree:          d.Degree,
		University:      d.University,
		EducationLevel:  d.EducationLevel,
		StartedYear:     d.StartedYear,
		CompletedYear:   d.CompletedYear,
		EducationStatus: d.EducationStatus,
		Email:           d.Email,
		EmailType:       d.EmailType,
		Phone:           d.Phone,
		PhoneType:       d.PhoneType,
		Image:           d.Image,
	}
}

func DetailFromDataModel(m *employeeDatamodel.EmployeeDetail) *Detail {
	return &Detail{
		Eid:             m.Eid,
		FullName:        m.FullName,
		InitName:        m.InitName,
		Gender:          m.Gender,
		DOB:             m.DOB,
		MaritalStatus:   m.MaritalStatus,
		Address:         m.Address,
		Country:         m.Country,
		Designation:     m.Designation,
		EmployeeType:    m.EmployeeType,
		Department:      m.Department,
		Status:          m.Status,
		UserType:        m.UserType,
		Degree:          m.Degree,
		University:      m.University,
		EducationLevel:  m.EducationLevel,
		StartedYear:     m.StartedYear,
		CompletedYear:   m.CompletedYear,
		EducationStatus: m.EducationStatus,
		Email:           m.Email,
		EmailType:       m.EmailType,
		Phone:           m.Phone,
		PhoneType:       m.PhoneType,
		Image:           m.Image,
	}
}

func BankAccountToDataModel(a *BankAccount) *employeeDatamodel.BankAccount {
	return &employeeDatamodel.BankAccount{
		Eid:               a.Eid,
		AccountHolderName: a.AccountHolderName,
		AccountNo:         a.AccountNo,
		BankName:          a.BankName,
		BranchName:        a.BranchName,
	}
}

func BankAccountFromDataModel(m *employeeDatamodel.BankAccount) *BankAccount {
	return &BankAccount{
		Eid:               m.Eid,
		AccountHolderName: m.AccountHolderName,
		AccountNo:         m.AccountNo,
		BankName:          m.BankName,
		BranchName:        m.BranchName,
	}
}
