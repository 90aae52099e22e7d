package training

import (
	"errors"
	"log/slog"
	"time"

	"github.com/ems-project/ems-backend/internal"
	"github.com/ems-project/ems-backend/internal/payroll"
)

// Service handles training budgets and funding requests.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) AllBudgets() ([]*BudgetDTO, error) {
	budgets, err := s.repo.AllBudgets()
	if err != nil {
		s.logger.Error("failed to list training budgets", "error", err)
		return nil, internal.NewInternalError("failed to list training budgets", err)
	}
	return BudgetDTOsFromBudgets(budgets), nil
}

func (s *Service) BudgetByEid(eid string) (*BudgetDTO, error) {
	b, err := s.repo.BudgetByEid(eid)
	if err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			return nil, internal.NewNotFoundError("training budget not found", internal.ErrCodeTrainingNotFound)
		}
		s.logger.Error("failed to get training budget", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to get training budget", err)
	}
	return BudgetDTOFromBudget(b), nil
}

func (s *Service) CreateBudget(dto BudgetDTO) (*BudgetDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeInvalidAmount)
	}

	b := dto.ToBudget()
	if err := s.repo.CreateBudget(b); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			return nil, internal.NewConflictError("training budget already exists for this employee", internal.ErrCodeDuplicateRecord)
		}
		s.logger.Error("failed to create training budget", "error", err, "eid", dto.Eid)
		return nil, internal.NewInternalError("failed to create training budget", err)
	}

	s.logger.Info("training budget created", "eid", b.Eid)
	return BudgetDTOFromBudget(b), nil
}

func (s *Service) UpdateBudget(eid string, dto BudgetDTO) (*BudgetDTO, error) {
	if _, err := s.BudgetByEid(eid); err != nil {
		return nil, err
	}

	dto.Eid = eid
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeInvalidAmount)
	}

	b := dto.ToBudget()
	if err := s.repo.UpdateBudget(b); err != nil {
		s.logger.Error("failed to update training budget", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to update training budget", err)
	}

	s.logger.Info("training budget updated", "eid", eid)
	return BudgetDTOFromBudget(b), nil
}

func (s *Service) DeleteBudget(eid string) error {
	if _, err := s.BudgetByEid(eid); err != nil {
		return err
	}

	if err := s.repo.DeleteBudget(eid); err != nil {
		s.logger.Error("failed to delete training budget", "error", err, "eid", eid)
		return internal.NewInternalError("failed to delete training budget", err)
	}

	s.logger.Info("training budget deleted", "eid", eid)
	return nil
}

func (s *Service) AllRequests() ([]*RequestDTO, error) {
	requests, err := s.repo.AllRequests()
	if err != nil {
		s.logger.Error("failed to list training requests", "error", err)
		return nil, internal.NewInternalError("failed to list training requests", err)
	}
	return RequestDTOsFromRequests(requests), nil
}

// RequestByID looks up a request by its display id. A bare employee id
// without the "tr_" prefix is accepted too.
func (s *Service) RequestByID(id string) (*RequestDTO, error) {
	req, err := s.resolveRequest(id)
	if err != nil {
		return nil, err
	}
	return RequestDTOFromRequest(req), nil
}

func (s *Service) CreateRequest(dto CreateRequestDTO) (*RequestDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	req := dto.ToRequest()
	if err := s.repo.CreateRequest(req); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			return nil, internal.NewConflictError("training request already exists for this employee", internal.ErrCodeDuplicateRecord)
		}
		s.logger.Error("failed to create training request", "error", err, "eid", dto.Eid)
		return nil, internal.NewInternalError("failed to create training request", err)
	}

	s.logger.Info("training request created", "eid", req.Eid)
	return RequestDTOFromRequest(req), nil
}

// UpdateRequest merges the supplied fields into the stored request. When the
// status transitions to Approved and no granted date is stored or supplied,
// the granted date is set to today.
func (s *Service) UpdateRequest(id string, dto UpdateRequestDTO) (*RequestDTO, error) {
	req, err := s.resolveRequest(id)
	if err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if dto.Status != nil && *dto.Status == StatusApproved && req.GrantedDate == nil {
		if dto.GrantedDate == nil || *dto.GrantedDate == "" {
			today := s.now().Format(dateLayout)
			dto.GrantedDate = &today
			s.logger.Info("training request approved, granting today",
				"eid", req.Eid, "granted_date", today)
		}
	}

	applyRequestUpdate(req, dto)

	if err := s.repo.UpdateRequest(req); err != nil {
		s.logger.Error("failed to update training request", "error", err, "eid", req.Eid)
		return nil, internal.NewInternalError("failed to update training request", err)
	}

	s.logger.Info("training request updated", "eid", req.Eid)
	return RequestDTOFromRequest(req), nil
}

func (s *Service) DeleteRequest(id string) error {
	req, err := s.resolveRequest(id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteRequest(req.Eid); err != nil {
		s.logger.Error("failed to delete training request", "error", err, "eid", req.Eid)
		return internal.NewInternalError("failed to delete training request", err)
	}

	s.logger.Info("training request deleted", "eid", req.Eid)
	return nil
}

func (s *Service) resolveRequest(id string) (*Request, error) {
	eid := payroll.DecodeTrainingID(id)

	req, err := s.repo.RequestByEid(eid)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return nil, internal.NewNotFoundError("training request not found", internal.ErrCodeTrainingNotFound)
		}
		s.logger.Error("failed to resolve training request", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to resolve training request", err)
	}
	return req, nil
}

func applyRequestUpdate(req *Request, dto UpdateRequestDTO) {
	if dto.RequestedAmount != nil {
		req.RequestedAmount = parseAmount(*dto.RequestedAmount)
	}
	if dto.Reason != nil {
		req.Reason = optionalString(*dto.Reason)
	}
	if dto.AppliedDate != nil {
		req.AppliedDate = optionalDate(*dto.AppliedDate)
	}
	if dto.Status != nil && *dto.Status != "" {
		req.Status = dto.Status
	}
	if dto.GrantedDate != nil {
		req.GrantedDate = optionalDate(*dto.GrantedDate)
	}
	if dto.ProofDocumentURL != nil {
		req.ProofDocumentURL = optionalString(*dto.ProofDocumentURL)
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &d
}
