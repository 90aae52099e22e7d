package employee

import (
	"errors"
	"log/slog"

	"github.com/ems-project/ems-backend/internal"
)

// Service handles departments, employee details and bank accounts.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) AllDepartments() ([]*Department, error) {
	departments, err := s.repo.AllDepartments()
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, internal.NewInternalError("failed to list departments", err)
	}
	return departments, nil
}

func (s *Service) DepartmentByDno(dno string) (*Department, error) {
	d, err := s.repo.DepartmentByDno(dno)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			return nil, internal.NewNotFoundError("department not found", internal.ErrCodeDepartmentNotFound)
		}
		s.logger.Error("failed to get department", "error", err, "dno", dno)
		return nil, internal.NewInternalError("failed to get department", err)
	}
	return d, nil
}

func (s *Service) CreateDepartment(dto DepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	d := &Department{
		Dno:       dto.Dno,
		Dname:     dto.Dname,
		NoOfEmp:   dto.NoOfEmp,
		Dlocation: dto.Dlocation,
	}
	if err := s.repo.CreateDepartment(d); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			return nil, internal.NewConflictError("department already exists", internal.ErrCodeDuplicateRecord)
		}
		s.logger.Error("failed to create department", "error", err, "dno", dto.Dno)
		return nil, internal.NewInternalError("failed to create department", err)
	}

	s.logger.Info("department created", "dno", d.Dno)
	return d, nil
}

func (s *Service) UpdateDepartment(dno string, dto DepartmentDTO) (*Department, error) {
	if _, err := s.DepartmentByDno(dno); err != nil {
		return nil, err
	}

	d := &Department{
		Dno:       dno,
		Dname:     dto.Dname,
		NoOfEmp:   dto.NoOfEmp,
		Dlocation: dto.Dlocation,
	}
	if err := s.repo.UpdateDepartment(d); err != nil {
		s.logger.Error("failed to update department", "error", err, "dno", dno)
		return nil, internal.NewInternalError("failed to update department", err)
	}

	s.logger.Info("department updated", "dno", dno)
	return d, nil
}

func (s *Service) DeleteDepartment(dno string) error {
	if _, err := s.DepartmentByDno(dno); err != nil {
		return err
	}

	if err := s.repo.DeleteDepartment(dno); err != nil {
		s.logger.Error("failed to delete department", "error", err, "dno", dno)
		return internal.NewInternalError("failed to delete department", err)
	}

	s.logger.Info("department deleted", "dno", dno)
	return nil
}

func (s *Service) AllDetails() ([]*DetailDTO, error) {
	details, err := s.repo.AllDetails()
	if err != nil {
		s.logger.Error("failed to list employee details", "error", err)
		return nil, internal.NewInternalError("failed to list employee details", err)
	}
	return DetailDTOsFromDetails(details), nil
}

func (s *Service) DetailByEid(eid string) (*DetailDTO, error) {
	d, err := s.repo.DetailByEid(eid)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return nil, internal.NewNotFoundError("employee not found", internal.ErrCodeEmployeeNotFound)
		}
		s.logger.Error("failed to get employee detail", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to get employee detail", err)
	}
	return DetailDTOFromDetail(d), nil
}

func (s *Service) CreateDetail(dto DetailDTO) (*DetailDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	d := dto.ToDetail()
	if err := s.repo.CreateDetail(d); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			return nil, internal.NewConflictError("employee already exists", internal.ErrCodeDuplicateRecord)
		}
		s.logger.Error("failed to create employee detail", "error", err, "eid", dto.Eid)
		return nil, internal.NewInternalError("failed to create employee detail", err)
	}

	s.logger.Info("employee detail created", "eid", d.Eid)
	return DetailDTOFromDetail(d), nil
}

func (s *Service) UpdateDetail(eid string, dto DetailDTO) (*DetailDTO, error) {
	if _, err := s.DetailByEid(eid); err != nil {
		return nil, err
	}

	dto.Eid = eid
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	d := dto.ToDetail()
	if err := s.repo.UpdateDetail(d); err != nil {
		s.logger.Error("failed to update employee detail", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to update employee detail", err)
	}

	s.logger.Info("employee detail updated", "eid", eid)
	return DetailDTOFromDetail(d), nil
}

func (s *Service) DeleteDetail(eid string) error {
	if _, err := s.DetailByEid(eid); err != nil {
		return err
	}

	if err := s.repo.DeleteDetail(eid); err != nil {
		s.logger.Error("failed to delete employee detail", "error", err, "eid", eid)
		return internal.NewInternalError("failed to delete employee detail", err)
	}

	s.logger.Info("employee detail deleted", "eid", eid)
	return nil
}

func (s *Service) AllBankAccounts() ([]*BankAccount, error) {
	accounts, err := s.repo.AllBankAccounts()
	if err != nil {
		s.logger.Error("failed to list bank accounts", "error", err)
		return nil, internal.NewInternalError("failed to list bank accounts", err)
	}
	return accounts, nil
}

func (s *Service) BankAccountByEid(eid string) (*BankAccount, error) {
	a, err := s.repo.BankAccountByEid(eid)
	if err != nil {
		if errors.Is(err, ErrBankAccountNotFound) {
			return nil, internal.NewNotFoundError("bank account not found", internal.ErrCodeBankAccountNotFound)
		}
		s.logger.Error("failed to get bank account", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to get bank account", err)
	}
	return a, nil
}

func (s *Service) CreateBankAccount(dto BankAccountDTO) (*BankAccount, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	a := dto.ToBankAccount()
	if err := s.repo.CreateBankAccount(a); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			return nil, internal.NewConflictError("bank account already exists for this employee", internal.ErrCodeDuplicateRecord)
		}
		s.logger.Error("failed to create bank account", "error", err, "eid", dto.Eid)
		return nil, internal.NewInternalError("failed to create bank account", err)
	}

	s.logger.Info("bank account created", "eid", a.Eid)
	return a, nil
}

func (s *Service) UpdateBankAccount(eid string, dto BankAccountDTO) (*BankAccount, error) {
	if _, err := s.BankAccountByEid(eid); err != nil {
		return nil, err
	}

	dto.Eid = eid
	a := dto.ToBankAccount()
	if err := s.repo.UpdateBankAccount(a); err != nil {
		s.logger.Error("failed to update bank account", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to update bank account", err)
	}

	s.logger.Info("bank account updated", "eid", eid)
	return a, nil
}

func (s *Service) DeleteBankAccount(eid string) error {
	if _, err := s.BankAccountByEid(eid); err != nil {
		return err
	}

	if err := s.repo.DeleteBankAccount(eid); err != nil {
		s.logger.Error("failed to delete bank account", "error", err, "eid", eid)
		return internal.NewInternalError("failed to delete bank account", err)
	}

	s.logger.Info("bank account deleted", "eid", eid)
	return nil
}
