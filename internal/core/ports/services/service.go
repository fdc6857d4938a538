package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User               UserSvcFacade
	Token              TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
	AccessControl      AccessControlSvcFacade
	Property           PropertySvcFacade
	Transaction        TransactionSvcFacade
	Lead               LeadSvcFacade
	Message            MessageSvcFacade
	Calendar           CalendarSvcFacade
	Dashboard          DashboardSvcFacade
	Analytics          AnalyticsSvcFacade
	Notification       NotificationSvcFacade
	Support            SupportSvcFacade
	AdminApproval      AdminApprovalSvcFacade
}
