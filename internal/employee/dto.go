package employee

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type DepartmentDTO struct {
	Dno       string `json:"dno"`
	Dname     string `json:"dname"`
	NoOfEmp   int    `json:"no_of_emp"`
	Dlocation string `json:"dlocation"`
}

func (dto DepartmentDTO) Validate() error {
	if dto.Dno == "" {
		return errors.New("dno is required")
	}
	if dto.Dname == "" {
		return errors.New("dname is required")
	}
	if dto.NoOfEmp < 0 {
		return errors.New("no_of_emp cannot be negative")
	}
	return nil
}

type DetailDTO struct {
	Eid             string `json:"eid"`
	FullName        string `json:"full_name"`
	InitName        string `json:"init_name,omitempty"`
	Gender          string `json:"gender"`
	DOB             string `json:"dob,omitempty"`
	MaritalStatus   string `json:"marital_status"`
	Address         string `json:"address,omitempty"`
	Country         string `json:"country"`
	Designation     string `json:"designation"`
	EmployeeType    string `json:"employee_type"`
	Department      string `json:"department"`
	Status          string `json:"status"`
	UserType        string `json:"user_type"`
	Degree          string `json:"degree,omitempty"`
	University      string `json:"university,omitempty"`
	EducationLevel  string `json:"education_level,omitempty"`
	StartedYear     *int   `json:"started_year,omitempty"`
	CompletedYear   *int   `json:"completed_year,omitempty"`
	EducationStatus string `json:"education_status,omitempty"`
	Email           string `json:"email"`
	EmailType       string `json:"email_type"`
	Phone           string `json:"phone,omitempty"`
	PhoneType       string `json:"phone_type,omitempty"`
	Image           string `json:"image,omitempty"`
}

func (dto DetailDTO) Validate() error {
	if dto.Eid == "" {
		return errors.New("eid is required")
	}
	if dto.FullName == "" {
		return errors.New("full_name is required")
	}
	if dto.Email == "" {
		return errors.New("email is required")
	}
	if dto.DOB != "" {
		if _, err := time.Parse(dateLayout, dto.DOB); err != nil {
			return fmt.Errorf("dob is not a valid date: %q", dto.DOB)
		}
	}
	return nil
}

func (dto DetailDTO) ToDetail() *Detail {
	d := &Detail{
		Eid:             dto.Eid,
		FullName:        dto.FullName,
		InitName:        optionalString(dto.InitName),
		Gender:          dto.Gender,
		MaritalStatus:   dto.MaritalStatus,
		Address:         optionalString(dto.Address),
		Country:         dto.Country,
		Designation:     dto.Designation,
		EmployeeType:    dto.EmployeeType,
		Department:      dto.Department,
		Status:          dto.Status,
		UserType:        dto.UserType,
		Degree:          optionalString(dto.Degree),
		University:      optionalString(dto.University),
		EducationLevel:  optionalString(dto.EducationLevel),
		StartedYear:     dto.StartedYear,
		CompletedYear:   dto.CompletedYear,
		EducationStatus: optionalString(dto.EducationStatus),
		Email:           dto.Email,
		EmailType:       dto.EmailType,
		Phone:           optionalString(dto.Phone),
		PhoneType:       optionalString(dto.PhoneType),
		Image:           optionalString(dto.Image),
	}
	if d.Status == "" {
		d.Status = "Active"
	}
	if d.EmailType == "" {
		d.EmailType = "Official"
	}
	if dto.DOB != "" {
		if dob, err := time.Parse(dateLayout, dto.DOB); err == nil {
			d.DOB = &dob
		}
	}
	return d
}

func DetailDTOFromDetail(d *Detail) *DetailDTO {
	dto := &DetailDTO{
		Eid:             d.Eid,
		FullName:        d.FullName,
		InitName:        stringValue(d.InitName),
		Gender:          d.Gender,
		MaritalStatus:   d.MaritalStatus,
		Address:         stringValue(d.Address),
		Country:         d.Country,
		Designation:     d.Designation,
		EmployeeType:    d.EmployeeType,
		Department:      d.Department,
		Status:          d.Status,
		UserType:        d.UserType,
		Degree:          stringValue(d.Degree),
		University:      stringValue(d.University),
		EducationLevel:  stringValue(d.EducationLevel),
		StartedYear:     d.StartedYear,
		CompletedYear:   d.CompletedYear,
		EducationStatus: stringValue(d.EducationStatus),
		Email:           d.Email,
		EmailType:       d.EmailType,
		Phone:           stringValue(d.Phone),
		PhoneType:       stringValue(d.PhoneType),
		Image:           stringValue(d.Image),
	}
	if d.DOB != nil {
		dto.DOB = d.DOB.Format(dateLayout)
	}
	return dto
}

func DetailDTOsFromDetails(details []*Detail) []*DetailDTO {
	result := make([]*DetailDTO, len(details))
	for i, d := range details {
		result[i] = DetailDTOFromDetail(d)
	}
	return result
}

type BankAccountDTO struct {
	Eid               string `json:"eid"`
	AccountHolderName string `json:"account_holder_name,omitempty"`
	AccountNo         string `json:"account_no,omitempty"`
	BankName          string `json:"bank_name,omitempty"`
	BranchName        string `json:"branch_name,omitempty"`
}

func (dto BankAccountDTO) Validate() error {
	if dto.Eid == "" {
		return errors.New("eid is required")
	}
	return nil
}

func (dto BankAccountDTO) ToBankAccount() *BankAccount {
	return &BankAccount{
		Eid:               dto.Eid,
		AccountHolderName: optionalString(dto.AccountHolderName),
		AccountNo:         optionalString(dto.AccountNo),
		BankName:          optionalString(dto.BankName),
		BranchName:        optionalString(dto.BranchName),
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
