package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
	"github.com/hostvana/property_management_app/internal/utils"
)

// userService implements UserSvcFacade on top of the user repository.
type userService struct {
	BaseService
	userRepo         portsrepo.UserRepositoryFacade
	adminApproval    portssvc.AdminApprovalSvcFacade
	resetTokenExpiry time.Duration
}

// UserServiceOption configures the user service.
type UserServiceOption func(*userService)

// WithAdminApprovalService wires the approval workflow used when a sign-up
// declares the admin role.
func WithAdminApprovalService(svc portssvc.AdminApprovalSvcFacade) UserServiceOption {
	return func(s *userService) {
		s.adminApproval = svc
	}
}

// WithResetTokenExpiry overrides how long password reset tokens stay valid.
func WithResetTokenExpiry(d time.Duration) UserServiceOption {
	return func(s *userService) {
		s.resetTokenExpiry = d
	}
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, opts ...UserServiceOption) portssvc.UserSvcFacade {
	s := &userService{
		userRepo:         userRepo,
		resetTokenExpiry: 30 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterUser creates a new account. The declared role is stored as-is, but
// IsAdmin always starts false: declaring admin opens an approval request and
// grants nothing until a reviewer approves it.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role %q", apperrors.ErrValidation, req.Role)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during registration")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:       newUserID,
		Email:        req.Email,
		CompanyName:  req.CompanyName,
		Phone:        req.Phone,
		Role:         role,
		IsAdmin:      false,
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save new user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if role == domain.RoleAdmin && s.adminApproval != nil {
		// Approval is best-effort at registration time; a failed request can
		// be re-opened later and must not roll back the account.
		if _, err := s.adminApproval.OpenRequest(ctx, newUserID); err != nil {
			s.LogError(ctx, err, "Failed to open admin approval request",
				slog.String("user_id", newUserID))
		}
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", newUserID), slog.String("role", string(role)))
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// ListUsers retrieves a paginated list of users.
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateProfile applies self-service edits to the caller's own profile.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// UpdateRefreshToken updates the refresh token details for a user.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

// ClearRefreshToken clears the refresh token for a user.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// DeleteUser marks a user as deleted (soft delete).
func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.LogInfo(ctx, "User marked deleted", slog.String("user_id", userID),
		slog.String("requested_by", requestingUserID))
	return nil
}

// AuthenticateUser authenticates a user with email and password. Lookup
// failures and password mismatches both surface as ErrUnauthorized so the
// response does not reveal which accounts exist.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user for authentication: %w", err)
	}

	if user.DeletedAt != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// FindOrCreateGoogleUser resolves a Google identity to a local account,
// creating an owner account on first sign-in.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	// Fall back to email match so a local account can link its Google identity.
	user, err = s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user by email: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	newUser := domain.User{
		UserID:         newUserID,
		Email:          info.Email,
		CompanyName:    info.Name,
		Role:           domain.RoleOwner,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: info.ID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to create user from google sign-in", slog.String("email", info.Email))
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}

	s.LogInfo(ctx, "User created via google sign-in", slog.String("user_id", newUserID))
	return &newUser, nil
}

// InitiatePasswordReset issues a reset token for the account. The caller is
// expected to respond identically whether or not the account exists; only the
// existence path returns a token.
func (s *userService) InitiatePasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find user for password reset: %w", err)
	}

	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().Add(s.resetTokenExpiry)
	if err := s.userRepo.UpdateResetToken(ctx, user.UserID, utils.HashOpaqueToken(rawToken), expiry); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	s.LogInfo(ctx, "Password reset initiated", slog.String("user_id", user.UserID))
	return rawToken, nil
}

// CompletePasswordReset validates a reset token and sets the new password.
func (s *userService) CompletePasswordReset(ctx context.Context, email, token, newPassword string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to find user for password reset: %w", err)
	}

	if user.ResetTokenHash == "" || user.ResetTokenExpiryTime == nil {
		return apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.ResetTokenExpiryTime) {
		return apperrors.ErrUnauthorized
	}
	if !utils.CompareOpaqueTokenHash(token, user.ResetTokenHash) {
		return apperrors.ErrUnauthorized
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.UserID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Any outstanding session should re-authenticate after a reset.
	if err := s.userRepo.ClearRefreshToken(ctx, user.UserID); err != nil {
		s.LogWarn(ctx, "Failed to clear refresh token after password reset",
			slog.String("user_id", user.UserID), slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Password reset completed", slog.String("user_id", user.UserID))
	return nil
}
