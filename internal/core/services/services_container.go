package services

import (
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notifications first since several services fan out to them
	container.Notification = NewNotificationService(repos.NotificationRepo)

	container.AdminApproval = NewAdminApprovalService(
		repos.AdminRequestRepo,
		repos.UserRepo,
		WithApprovalNotifications(container.Notification),
	)

	container.User = NewUserService(
		repos.UserRepo,
		WithAdminApprovalService(container.AdminApproval),
		WithResetTokenExpiry(cfg.ResetTokenExpiryDuration),
	)

	container.AccessControl = NewAccessControlService(repos.UserRepo, repos.PermissionRepo)

	container.Property = NewPropertyService(repos.PropertyRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Lead = NewLeadService(repos.LeadRepo)
	container.Message = NewMessageService(
		repos.MessageRepo,
		container.Lead,
		WithMentionNotifications(container.Notification),
	)
	container.Calendar = NewCalendarService(repos.CalendarRepo, container.Property)

	reporting := NewReportingService(repos.PropertyRepo, repos.TransactionRepo, repos.CalendarRepo)
	container.Dashboard = reporting
	container.Analytics = reporting

	container.Support = NewSupportService(repos.SupportRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
