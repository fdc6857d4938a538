package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
)

// maxResolveAttempts is the total number of tries against the permissions
// store before resolution gives up and fails closed.
const maxResolveAttempts = 3

// defaultResolveBackoff returns the wait before retry attempt n (1-based):
// 2s after the first failure, 4s after the second.
func defaultResolveBackoff(attempt int) time.Duration {
	return time.Duration(attempt) * 2 * time.Second
}

// accessControlService resolves a user's profile and role grants into an
// AccessResolution. Failures are retried with backoff; when the store stays
// unreachable the service returns the fail-closed resolution and
// ErrPermissionsUnavailable rather than ever guessing a role.
type accessControlService struct {
	BaseService
	userRepo       portsrepo.UserReader
	permissionRepo portsrepo.PermissionReader
	backoff        func(attempt int) time.Duration
	sleep          func(ctx context.Context, d time.Duration) error
}

// AccessControlOption configures the access control service.
type AccessControlOption func(*accessControlService)

// WithResolveBackoff overrides the retry backoff schedule.
func WithResolveBackoff(backoff func(attempt int) time.Duration) AccessControlOption {
	return func(s *accessControlService) {
		s.backoff = backoff
	}
}

// NewAccessControlService creates a new access control service.
func NewAccessControlService(userRepo portsrepo.UserReader, permissionRepo portsrepo.PermissionReader, opts ...AccessControlOption) portssvc.AccessControlSvcFacade {
	s := &accessControlService{
		userRepo:       userRepo,
		permissionRepo: permissionRepo,
		backoff:        defaultResolveBackoff,
		sleep:          sleepCtx,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Resolve loads the user's profile and role grants. A missing profile is not
// retried: it is a definite answer, and the caller is denied with ErrNotFound.
// Transient store failures are retried up to maxResolveAttempts before the
// resolution fails closed.
func (s *accessControlService) Resolve(ctx context.Context, userID string) (domain.AccessResolution, error) {
	var lastErr error

	for attempt := 1; attempt <= maxResolveAttempts; attempt++ {
		resolution, err := s.resolveOnce(ctx, userID)
		if err == nil {
			if attempt > 1 {
				s.LogInfo(ctx, "Permissions resolved after retry",
					slog.String("user_id", userID), slog.Int("attempt", attempt))
			}
			return resolution, nil
		}
		if errors.Is(err, errProfileMissing) {
			return domain.FailClosed(), apperrors.ErrNotFound
		}

		lastErr = err
		s.LogWarn(ctx, "Permissions resolution attempt failed",
			slog.String("user_id", userID),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		if attempt < maxResolveAttempts {
			if serr := s.sleep(ctx, s.backoff(attempt)); serr != nil {
				return domain.FailClosed(), fmt.Errorf("%w: %w", apperrors.ErrPermissionsUnavailable, serr)
			}
		}
	}

	s.LogError(ctx, lastErr, "Permissions resolution failed after all retries, failing closed",
		slog.String("user_id", userID))
	return domain.FailClosed(), fmt.Errorf("%w: %w", apperrors.ErrPermissionsUnavailable, lastErr)
}

// errProfileMissing separates "the store answered: no such profile" from
// transient failures, so only the latter are retried.
var errProfileMissing = errors.New("profile missing")

func (s *accessControlService) resolveOnce(ctx context.Context, userID string) (domain.AccessResolution, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.AccessResolution{}, errProfileMissing
		}
		return domain.AccessResolution{}, fmt.Errorf("failed to load profile: %w", err)
	}

	// The approval flag collapses into the effective role: an approved
	// profile resolves as admin whatever role string the row carries.
	role := user.Role
	if user.IsAdmin {
		role = domain.RoleAdmin
	}

	permissions, err := s.permissionRepo.FindPermissionsByRole(ctx, role)
	if err != nil {
		return domain.AccessResolution{}, fmt.Errorf("failed to load role permissions: %w", err)
	}

	return domain.AccessResolution{
		Role:            role,
		IsAdminApproved: user.IsAdmin,
		Permissions:     permissions,
	}, nil
}
