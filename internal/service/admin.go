package service

import (
	"context"
	"encoding/json"
	"errors"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
)

var ErrUnknownRole = errors.New("unknown role")

type adminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

// UpdateUserRole is the sole mutation path for role changes. The role has
// already been parsed into the closed set by the caller; the database
// procedure re-checks authorization, persists and audits the change.
func (s *adminService) UpdateUserRole(ctx context.Context, userID string, role domain.Role) (json.RawMessage, error) {
	if !role.Valid() {
		return nil, ErrUnknownRole
	}

	payload, err := s.userRepo.UpdateRole(ctx, userID, role)
	if err != nil {
		logger.Error("Role update procedure failed", "user_id", userID, "new_role", role, "error", err)
		return nil, err
	}

	logger.Info("User role updated", "user_id", userID, "new_role", role)
	return payload, nil
}

func (s *adminService) ListMembers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}
