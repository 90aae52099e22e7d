package employee

import "time"

type Department struct {
	Dno       string `gorm:"column:department_number;primaryKey"`
	Dname     string `gorm:"column:department_name;not null"`
	NoOfEmp   int    `gorm:"column:number_of_employees"`
	Dlocation string `gorm:"column:department_location"`
}

func (Department) TableName() string {
	return "departments"
}

// EmployeeDetail is the denormalized per-employee profile used by the
// administrative UI: identity, employment, education and contact info in one
// row keyed by eid.
type EmployeeDetail struct {
	Eid             string     `gorm:"column:eid;primaryKey"`
	FullName        string     `gorm:"column:full_name;not null"`
	InitName        *string    `gorm:"column:init_name"`
	Gender          string     `gorm:"column:gender"`
	DOB             *time.Time `gorm:"column:dob;type:date"`
	MaritalStatus   string     `gorm:"column:marital_status"`
	Address         *string    `gorm:"column:address"`
	Country         string     `gorm:"column:country"`
	Designation     string     `gorm:"column:designation"`
	EmployeeType    string     `gorm:"column:employee_type"`
	Department      string     `gorm:"column:department"`
	Status          string     `gorm:"column:status;default:Active"`
	UserType        string     `gorm:"column:user_type"`
	Degree          *string    `gorm:"column:degree"`
	University      *string    `gorm:"column:university"`
	EducationLevel  *string    `gorm:"column:education_level"`
	StartedYear     *int       `gorm:"column:started_year"`
	CompletedYear   *int       `gorm:"column:completed_year"`
	EducationStatus *string    `gorm:"column:education_status"`
	Email           string     `gorm:"column:email"`
	EmailType       string     `gorm:"column:email_type;default:Official"`
	Phone           *string    `gorm:"column:phone"`
	PhoneType       *string    `gorm:"column:phone_type"`
	Image           *string    `gorm:"column:image"`
}

func (EmployeeDetail) TableName() string {
	return "employee_details"
}

// BankAccount holds the payout account details for an employee.
type BankAccount struct {
	Eid               string  `gorm:"column:eid;primaryKey"`
	AccountHolderName *string `gorm:"column:account_holder_name"`
	AccountNo         *string `gorm:"column:account_no"`
	BankName          *string `gorm:"column:bank_name"`
	BranchName        *string `gorm:"column:branch_name"`
}

func (BankAccount) TableName() string {
	return "bank_account_details"
}
