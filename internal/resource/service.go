package resource

import (
	"errors"
	"log/slog"

	"github.com/ems-project/ems-backend/internal"
)

// Service handles resource allocation bookkeeping.
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

func (s *Service) AllAllocations() ([]*AllocationDTO, error) {
	allocations, err := s.repo.AllAllocations()
	if err != nil {
		s.logger.Error("failed to list resource allocations", "error", err)
		return nil, internal.NewInternalError("failed to list resource allocations", err)
	}
	return DTOsFromAllocations(allocations), nil
}

func (s *Service) AllocationsByEmployee(eid string) ([]*AllocationDTO, error) {
	allocations, err := s.repo.AllocationsByEid(eid)
	if err != nil {
		s.logger.Error("failed to list employee resource allocations", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to list employee resource allocations", err)
	}
	return DTOsFromAllocations(allocations), nil
}

func (s *Service) AllocationByID(id int64) (*AllocationDTO, error) {
	a, err := s.repo.AllocationByID(id)
	if err != nil {
		if errors.Is(err, ErrAllocationNotFound) {
			return nil, internal.NewNotFoundError("resource allocation not found", internal.ErrCodeAllocationNotFound)
		}
		s.logger.Error("failed to get resource allocation", "error", err, "allocation_id", id)
		return nil, internal.NewInternalError("failed to get resource allocation", err)
	}
	return DTOFromAllocation(a), nil
}

func (s *Service) CreateAllocation(dto AllocationDTO) (*AllocationDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	a := dto.ToAllocation()
	a.AllocationID = 0
	if err := s.repo.CreateAllocation(a); err != nil {
		s.logger.Error("failed to create resource allocation", "error", err, "eid", dto.Eid)
		return nil, internal.NewInternalError("failed to create resource allocation", err)
	}

	s.logger.Info("resource allocation created", "allocation_id", a.AllocationID, "eid", a.Eid)
	return DTOFromAllocation(a), nil
}

func (s *Service) UpdateAllocation(id int64, dto AllocationDTO) (*AllocationDTO, error) {
	if _, err := s.AllocationByID(id); err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	a := dto.ToAllocation()
	a.AllocationID = id
	if err := s.repo.UpdateAllocation(a); err != nil {
		s.logger.Error("failed to update resource allocation", "error", err, "allocation_id", id)
		return nil, internal.NewInternalError("failed to update resource allocation", err)
	}

	s.logger.Info("resource allocation updated", "allocation_id", id)
	return DTOFromAllocation(a), nil
}

func (s *Service) DeleteAllocation(id int64) error {
	if _, err := s.AllocationByID(id); err != nil {
		return err
	}

	if err := s.repo.DeleteAllocation(id); err != nil {
		s.logger.Error("failed to delete resource allocation", "error", err, "allocation_id", id)
		return internal.NewInternalError("failed to delete resource allocation", err)
	}

	s.logger.Info("resource allocation deleted", "allocation_id", id)
	return nil
}
