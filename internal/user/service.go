package user

import (
	"errors"
	"log/slog"

	"github.com/ems-project/ems-backend/internal"
	"golang.org/x/crypto/bcrypt"
)

// Service manages API user accounts and user types.
type Service struct {
	repo       Repository
	logger     *slog.Logger
	bcryptCost int
}

func NewService(repo Repository, logger *slog.Logger, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

func (s *Service) AllUsers() ([]*UserDTO, error) {
	users, err := s.repo.AllUsers()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}
	return DTOsFromUsers(users), nil
}

func (s *Service) UserByEid(eid string) (*UserDTO, error) {
	u, err := s.repo.UserByEid(eid)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
		}
		s.logger.Error("failed to get user", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to get user", err)
	}
	return DTOFromUser(u), nil
}

func (s *Service) CreateUser(dto UserDTO) (*UserDTO, error) {
	if err := dto.Validate(true); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, internal.NewInternalError("failed to create user", err)
	}

	u := &User{
		Eid:          dto.Eid,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Urid:         dto.Urid,
	}
	if err := s.repo.CreateUser(u); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil, internal.NewConflictError("user already exists", internal.ErrCodeDuplicateRecord)
		}
		s.logger.Error("failed to create user", "error", err, "eid", dto.Eid)
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user created", "eid", u.Eid, "urid", u.Urid)
	return DTOFromUser(u), nil
}

// UpdateUser replaces email and role. Password changes only when a new
// password is supplied.
func (s *Service) UpdateUser(eid string, dto UserDTO) (*UserDTO, error) {
	existing, err := s.repo.UserByEid(eid)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
		}
		s.logger.Error("failed to get user", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to get user", err)
	}

	dto.Eid = eid
	if err := dto.Validate(false); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	existing.Email = dto.Email
	existing.Urid = dto.Urid
	if dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err)
			return nil, internal.NewInternalError("failed to update user", err)
		}
		existing.PasswordHash = string(hash)
	}

	if err := s.repo.UpdateUser(existing); err != nil {
		s.logger.Error("failed to update user", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to update user", err)
	}

	s.logger.Info("user updated", "eid", eid)
	return DTOFromUser(existing), nil
}

func (s *Service) DeleteUser(eid string) error {
	if _, err := s.UserByEid(eid); err != nil {
		return err
	}

	if err := s.repo.DeleteUser(eid); err != nil {
		s.logger.Error("failed to delete user", "error", err, "eid", eid)
		return internal.NewInternalError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "eid", eid)
	return nil
}

func (s *Service) AllUserTypes() ([]*UserTypeDTO, error) {
	types, err := s.repo.AllUserTypes()
	if err != nil {
		s.logger.Error("failed to list user types", "error", err)
		return nil, internal.NewInternalError("failed to list user types", err)
	}
	return DTOsFromUserTypes(types), nil
}
