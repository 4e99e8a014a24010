package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Reports paginate tighter than the rest of the API.
	DefaultReportPageSize = 10
	MaxBulkReports        = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv; charset=utf-8"

	// Context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyTenantID  = "tenant_id"
	ContextKeyRequestID = "request_id"

	DefaultCategoryColor = "#007bff"
	DefaultTimezone      = "America/Sao_Paulo"
)

// Table names
const (
	TableUsers                   = "users"
	TableUnits                   = "units"
	TableSectors                 = "sectors"
	TableLocals                  = "locais"
	TableEquipamentos            = "equipamentos"
	TableMotors                  = "motores"
	TableReports                 = "reports"
	TableReportUpdates           = "report_updates"
	TableReportImages            = "report_images"
	TableReportCategories        = "report_categories"
	TableReportData              = "report_data"
	TableNotifications           = "notifications"
	TableNotificationSettings    = "notification_settings"
	TableNotificationDeliveryLog = "notification_delivery_logs"
)
