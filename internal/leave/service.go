package leave

import (
	"errors"
	"log/slog"

	"github.com/ems-project/ems-backend/internal"
)

// Service handles leave types, balances and applications.
type Service struct {
	repo   Repository
	idgen  *IDGenerator
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		idgen:  NewIDGenerator(repo, logger),
		logger: logger,
	}
}

func (s *Service) AllTypes() ([]*LeaveType, error) {
	types, err := s.repo.AllTypes()
	if err != nil {
		s.logger.Error("failed to list leave types", "error", err)
		return nil, internal.NewInternalError("failed to list leave types", err)
	}
	return types, nil
}

func (s *Service) TypeByLid(lid string) (*LeaveType, error) {
	t, err := s.repo.TypeByLid(lid)
	if err != nil {
		if errors.Is(err, ErrTypeNotFound) {
			return nil, internal.NewNotFoundError("leave type not found", internal.ErrCodeLeaveNotFound)
		}
		s.logger.Error("failed to get leave type", "error", err, "lid", lid)
		return nil, internal.NewInternalError("failed to get leave type", err)
	}
	return t, nil
}

func (s *Service) CreateType(dto LeaveTypeDTO) (*LeaveType, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	t := &LeaveType{Lid: dto.Lid, LeaveType: dto.LeaveType}
	if err := s.repo.CreateType(t); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			return nil, internal.NewConflictError("leave type already exists", internal.ErrCodeDuplicateRecord)
		}
		s.logger.Error("failed to create leave type", "error", err, "lid", dto.Lid)
		return nil, internal.NewInternalError("failed to create leave type", err)
	}

	s.logger.Info("leave type created", "lid", t.Lid)
	return t, nil
}

func (s *Service) UpdateType(lid string, dto LeaveTypeDTO) (*LeaveType, error) {
	if _, err := s.TypeByLid(lid); err != nil {
		return nil, err
	}

	t := &LeaveType{Lid: lid, LeaveType: dto.LeaveType}
	if err := s.repo.UpdateType(t); err != nil {
		s.logger.Error("failed to update leave type", "error", err, "lid", lid)
		return nil, internal.NewInternalError("failed to update leave type", err)
	}

	s.logger.Info("leave type updated", "lid", lid)
	return t, nil
}

func (s *Service) DeleteType(lid string) error {
	if _, err := s.TypeByLid(lid); err != nil {
		return err
	}

	if err := s.repo.DeleteType(lid); err != nil {
		s.logger.Error("failed to delete leave type", "error", err, "lid", lid)
		return internal.NewInternalError("failed to delete leave type", err)
	}

	s.logger.Info("leave type deleted", "lid", lid)
	return nil
}

func (s *Service) AllBalances() ([]*Balance, error) {
	balances, err := s.repo.AllBalances()
	if err != nil {
		s.logger.Error("failed to list leave balances", "error", err)
		return nil, internal.NewInternalError("failed to list leave balances", err)
	}
	return balances, nil
}

func (s *Service) BalanceByEid(eid string) (*Balance, error) {
	b, err := s.repo.BalanceByEid(eid)
	if err != nil {
		if errors.Is(err, ErrBalanceNotFound) {
			return nil, internal.NewNotFoundError("leave balance not found", internal.ErrCodeLeaveNotFound)
		}
		s.logger.Error("failed to get leave balance", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to get leave balance", err)
	}
	return b, nil
}

func (s *Service) CreateBalance(dto BalanceDTO) (*Balance, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	b := &Balance{
		Eid:                dto.Eid,
		TotalAnnualLeaves:  dto.TotalAnnualLeaves,
		TotalCasualLeaves:  dto.TotalCasualLeaves,
		AnnualLeaveBalance: dto.AnnualLeaveBalance,
		CasualLeaveBalance: dto.CasualLeaveBalance,
	}
	if err := s.repo.CreateBalance(b); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			return nil, internal.NewConflictError("leave balance already exists for this employee", internal.ErrCodeDuplicateRecord)
		}
		s.logger.Error("failed to create leave balance", "error", err, "eid", dto.Eid)
		return nil, internal.NewInternalError("failed to create leave balance", err)
	}

	s.logger.Info("leave balance created", "eid", b.Eid)
	return b, nil
}

func (s *Service) UpdateBalance(eid string, dto BalanceDTO) (*Balance, error) {
	if _, err := s.BalanceByEid(eid); err != nil {
		return nil, err
	}

	b := &Balance{
		Eid:                eid,
		TotalAnnualLeaves:  dto.TotalAnnualLeaves,
		TotalCasualLeaves:  dto.TotalCasualLeaves,
		AnnualLeaveBalance: dto.AnnualLeaveBalance,
		CasualLeaveBalance: dto.CasualLeaveBalance,
	}
	if err := s.repo.UpdateBalance(b); err != nil {
		s.logger.Error("failed to update leave balance", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to update leave balance", err)
	}

	s.logger.Info("leave balance updated", "eid", eid)
	return b, nil
}

func (s *Service) DeleteBalance(eid string) error {
	if _, err := s.BalanceByEid(eid); err != nil {
		return err
	}

	if err := s.repo.DeleteBalance(eid); err != nil {
		s.logger.Error("failed to delete leave balance", "error", err, "eid", eid)
		return internal.NewInternalError("failed to delete leave balance", err)
	}

	s.logger.Info("leave balance deleted", "eid", eid)
	return nil
}

func (s *Service) AllApplications() ([]*ApplicationDTO, error) {
	apps, err := s.repo.AllApplications()
	if err != nil {
		s.logger.Error("failed to list leave applications", "error", err)
		return nil, internal.NewInternalError("failed to list leave applications", err)
	}
	return ApplicationDTOsFromApplications(apps), nil
}

func (s *Service) ApplicationsByEmployee(eid string) ([]*ApplicationDTO, error) {
	apps, err := s.repo.ApplicationsByEid(eid)
	if err != nil {
		s.logger.Error("failed to list employee leave applications", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to list employee leave applications", err)
	}
	return ApplicationDTOsFromApplications(apps), nil
}

func (s *Service) ApplicationByLid(lid string) (*ApplicationDTO, error) {
	a, err := s.repo.ApplicationByLid(lid)
	if err != nil {
		if errors.Is(err, ErrApplicationNotFound) {
			return nil, internal.NewNotFoundError("leave application not found", internal.ErrCodeLeaveNotFound)
		}
		s.logger.Error("failed to get leave application", "error", err, "lid", lid)
		return nil, internal.NewInternalError("failed to get leave application", err)
	}
	return ApplicationDTOFromApplication(a), nil
}

// CreateApplication stores a new leave application. A missing lid gets a
// generated one; missing status and priority default to Pending and Medium.
func (s *Service) CreateApplication(dto ApplicationDTO) (*ApplicationDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if dto.Lid == "" {
		dto.Lid = s.idgen.Next()
	}
	if dto.Status == "" {
		dto.Status = StatusPending
	}
	if dto.Priority == "" {
		dto.Priority = PriorityMedium
	}

	a := dto.ToApplication()
	if err := s.repo.CreateApplication(a); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			return nil, internal.NewConflictError("leave application id already exists", internal.ErrCodeDuplicateLeaveID)
		}
		s.logger.Error("failed to create leave application", "error", err, "lid", dto.Lid)
		return nil, internal.NewInternalError("failed to create leave application", err)
	}

	s.logger.Info("leave application created", "lid", a.Lid, "eid", a.Eid)
	return ApplicationDTOFromApplication(a), nil
}

func (s *Service) UpdateApplication(lid string, dto ApplicationDTO) (*ApplicationDTO, error) {
	if _, err := s.ApplicationByLid(lid); err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	dto.Lid = lid
	a := dto.ToApplication()
	if err := s.repo.UpdateApplication(a); err != nil {
		s.logger.Error("failed to update leave application", "error", err, "lid", lid)
		return nil, internal.NewInternalError("failed to update leave application", err)
	}

	s.logger.Info("leave application updated", "lid", lid, "status", a.Status)
	return ApplicationDTOFromApplication(a), nil
}

func (s *Service) DeleteApplication(lid string) error {
	if _, err := s.ApplicationByLid(lid); err != nil {
		return err
	}

	if err := s.repo.DeleteApplication(lid); err != nil {
		s.logger.Error("failed to delete leave application", "error", err, "lid", lid)
		return internal.NewInternalError("failed to delete leave application", err)
	}

	s.logger.Info("leave application deleted", "lid", lid)
	return nil
}
