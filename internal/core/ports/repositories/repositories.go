package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	PermissionRepo   PermissionRepositoryFacade
	PropertyRepo     PropertyRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	LeadRepo         LeadRepositoryFacade
	MessageRepo      MessageRepositoryFacade
	CalendarRepo     CalendarRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	SupportRepo      SupportRepositoryFacade
	AdminRequestRepo AdminRequestRepositoryFacade
}
