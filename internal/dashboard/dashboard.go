package dashboard

// Statistics is the aggregate snapshot served to the admin dashboard.
type Statistics struct {
	TotalEmployees   int64           `json:"total_employees"`
	ActiveEmployees  int64           `json:"active_employees"`
	TotalDepartments int64           `json:"total_departments"`
	TotalSalaries    float64         `json:"total_salaries"`
	LeaveSummary     LeaveSummary    `json:"leave_summary"`
	ResourceSummary  ResourceSummary `json:"resource_summary"`
	TrainingSummary  TrainingSummary `json:"training_summary"`
	RecentActivities RecentActivity  `json:"recent_activities"`
}

type LeaveSummary struct {
	TotalApplications  int64 `json:"total_applications"`
	Pending            int64 `json:"pending"`
	Approved           int64 `json:"approved"`
	Rejected           int64 `json:"rejected"`
	RecentApplications int64 `json:"recent_applications"`
}

type ResourceSummary struct {
	TotalResources int64 `json:"total_resources"`
	Allocated      int64 `json:"allocated"`
	Returned       int64 `json:"returned"`
}

type TrainingSummary struct {
	TotalBudgets      int64   `json:"total_budgets"`
	TotalRequests     int64   `json:"total_requests"`
	PendingRequests   int64   `json:"pending_requests"`
	ApprovedRequests  int64   `json:"approved_requests"`
	TotalBudgetAmount float64 `json:"total_budget_amount"`
	RemainingBudget   float64 `json:"remaining_budget"`
}

type RecentActivity struct {
	RecentLeaveApplications int64 `json:"recent_leave_applications"`
	RecentSalaryPayments    int64 `json:"recent_salary_payments"`
}

// Repository reads the aggregates the dashboard is built from.
type Repository interface {
	Statistics() (*Statistics, error)
}
