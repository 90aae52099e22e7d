package postgres

import (
	"time"

	"github.com/ems-project/ems-backend/internal/dashboard"
	"github.com/jmoiron/sqlx"
)

// DashboardRepository computes dashboard aggregates with plain SQL over sqlx.
// The counts are cheap enough to run per request; nothing here is cached.
type DashboardRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewDashboardRepository(db *sqlx.DB) dashboard.Repository {
	return &DashboardRepository{db: db, now: time.Now}
}

func (r *DashboardRepository) Statistics() (*dashboard.Statistics, error) {
	stats := &dashboard.Statistics{}
	thirtyDaysAgo := r.now().AddDate(0, 0, -30).Format("2006-01-02")

	counts := []struct {
		dest  *int64
		query string
		args  []interface{}
	}{
		{&stats.TotalEmployees, `SELECT COUNT(*) FROM employee_details`, nil},
		{&stats.ActiveEmployees, `SELECT COUNT(*) FROM employee_details WHERE status = 'Active'`, nil},
		{&stats.TotalDepartments, `SELECT COUNT(*) FROM departments`, nil},
		{&stats.LeaveSummary.TotalApplications, `SELECT COUNT(*) FROM leave_applications`, nil},
		{&stats.LeaveSummary.Pending, `SELECT COUNT(*) FROM leave_applications WHERE status = 'Pending'`, nil},
		{&stats.LeaveSummary.Approved, `SELECT COUNT(*) FROM leave_applications WHERE status = 'Approved'`, nil},
		{&stats.LeaveSummary.Rejected, `SELECT COUNT(*) FROM leave_applications WHERE status = 'Rejected'`, nil},
		{&stats.ResourceSummary.TotalResources, `SELECT COUNT(*) FROM resource_allocations`, nil},
		{&stats.ResourceSummary.Allocated, `SELECT COUNT(*) FROM resource_allocations WHERE collected_date IS NULL`, nil},
		{&stats.ResourceSummary.Returned, `SELECT COUNT(*) FROM resource_allocations WHERE collected_date IS NOT NULL`, nil},
		{&stats.TrainingSummary.TotalBudgets, `SELECT COUNT(*) FROM training_budgets`, nil},
		{&stats.TrainingSummary.TotalRequests, `SELECT COUNT(*) FROM training_requests`, nil},
		{&stats.TrainingSummary.PendingRequests, `SELECT COUNT(*) FROM training_requests WHERE status = 'Pending'`, nil},
		{&stats.TrainingSummary.ApprovedRequests, `SELECT COUNT(*) FROM training_requests WHERE status = 'Approved'`, nil},
		{&stats.LeaveSummary.RecentApplications, `SELECT COUNT(*) FROM leave_applications WHERE from_date >= $1`, []interface{}{thirtyDaysAgo}},
		{&stats.RecentActivities.RecentSalaryPayments, `SELECT COUNT(*) FROM salary_payments WHERE paid_date >= $1`, []interface{}{thirtyDaysAgo}},
	}
	for _, c := range counts {
		if err := r.db.Get(c.dest, c.query, c.args...); err != nil {
			return nil, err
		}
	}
	stats.RecentActivities.RecentLeaveApplications = stats.LeaveSummary.RecentApplications

	sums := []struct {
		dest  *float64
		query string
	}{
		{&stats.TotalSalaries, `SELECT COALESCE(SUM(net_salary), 0) FROM salary`},
		{&stats.TrainingSummary.TotalBudgetAmount, `SELECT COALESCE(SUM(budget_amount), 0) FROM training_budgets`},
		{&stats.TrainingSummary.RemainingBudget, `SELECT COALESCE(SUM(remaining_amount), 0) FROM training_budgets`},
	}
	for _, q := range sums {
		if err := r.db.Get(q.dest, q.query); err != nil {
			return nil, err
		}
	}

	return stats, nil
}
