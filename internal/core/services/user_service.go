package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils"
)

// userService provides user directory and credential operations.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	_, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err == nil {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("username %s already registered", req.Username))
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username %s: %w", req.Username, err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleUser
	}
	teamRole := domain.TeamRole(req.TeamRole)
	if teamRole == "" {
		teamRole = domain.TeamMember
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		PasswordHash: hash,
		Level:        req.Level,
		Company:      req.Company,
		CompanyCode:  req.CompanyCode,
		Department:   req.Department,
		Position:     req.Position,
		Team:         req.Team,
		TeamGroup:    req.TeamGroup,
		TeamRole:     teamRole,
		Role:         role,
		FlowID:       req.FlowID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.Username,
			LastUpdatedAt: now,
			LastUpdatedBy: req.Username,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.FindUsers(ctx, limit, offset)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actingUsername string) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.FirstName != nil {
		updated.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		updated.LastName = *req.LastName
	}
	if req.Level != nil {
		updated.Level = *req.Level
	}
	if req.Company != nil {
		updated.Company = *req.Company
	}
	if req.CompanyCode != nil {
		updated.CompanyCode = *req.CompanyCode
	}
	if req.Department != nil {
		updated.Department = *req.Department
	}
	if req.Position != nil {
		updated.Position = *req.Position
	}
	if req.Team != nil {
		updated.Team = *req.Team
	}
	if req.TeamGroup != nil {
		updated.TeamGroup = *req.TeamGroup
	}
	if req.TeamRole != nil {
		updated.TeamRole = domain.TeamRole(*req.TeamRole)
	}
	if req.Role != nil {
		updated.Role = domain.UserRole(*req.Role)
	}
	if req.FlowID != nil {
		updated.FlowID = *req.FlowID
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = actingUsername

	if err := s.userRepo.UpdateUser(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return &updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID, actingUsername string) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), actingUsername)
}

func (s *userService) VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user %s: %w", username, err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) FindOrCreateOAuthUser(ctx context.Context, email, firstName, lastName string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user %s: %w", email, err)
	}

	// First sign-in through the identity provider. No local password is set;
	// such accounts can only authenticate via OAuth.
	now := time.Now()
	created := domain.User{
		UserID:    uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Username:  email,
		Role:      domain.RoleUser,
		TeamRole:  domain.TeamMember,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     email,
			LastUpdatedAt: now,
			LastUpdatedBy: email,
		},
	}
	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to save oauth user: %w", err)
	}
	return &created, nil
}
