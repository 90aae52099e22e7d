package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/ems-project/ems-backend/internal/auth"
	"github.com/ems-project/ems-backend/internal/dashboard"
	"github.com/ems-project/ems-backend/internal/employee"
	"github.com/ems-project/ems-backend/internal/leave"
	"github.com/ems-project/ems-backend/internal/payroll"
	"github.com/ems-project/ems-backend/internal/resource"
	"github.com/ems-project/ems-backend/internal/training"
	"github.com/ems-project/ems-backend/internal/transport/middleware"
	"github.com/ems-project/ems-backend/internal/transport/swagger"
	"github.com/ems-project/ems-backend/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Dashboard *dashboard.Handler
	Employee  *employee.Handler
	Payroll   *payroll.Handler
	Leave     *leave.Handler
	Training  *training.Handler
	Resource  *resource.Handler
	User      *user.Handler
}

// RegisterAllRoutes mounts the full API surface under /api/v1. Only the
// user management routes sit behind the auth middleware; the rest of the
// surface is open, matching the admin tool this backend serves.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec and Swagger UI live at the root, outside the API prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", h.Auth.Login)

		r.Get("/dashboard/statistics", h.Dashboard.GetStatistics)

		r.Route("/departments", func(dr chi.Router) {
			dr.Get("/", h.Employee.GetDepartments)
			dr.Post("/", h.Employee.CreateDepartment)
			dr.Get("/{dno}", h.Employee.GetDepartment)
			dr.Put("/{dno}", h.Employee.UpdateDepartment)
			dr.Delete("/{dno}", h.Employee.DeleteDepartment)
		})

		r.Route("/employee_details", func(er chi.Router) {
			er.Get("/", h.Employee.GetDetails)
			er.Post("/", h.Employee.CreateDetail)
			er.Get("/{eid}", h.Employee.GetDetail)
			er.Put("/{eid}", h.Employee.UpdateDetail)
			er.Delete("/{eid}", h.Employee.DeleteDetail)
		})

		r.Route("/bank_accounts", func(br chi.Router) {
			br.Get("/", h.Employee.GetBankAccounts)
			br.Post("/", h.Employee.CreateBankAccount)
			br.Get("/{eid}", h.Employee.GetBankAccount)
			br.Put("/{eid}", h.Employee.UpdateBankAccount)
			br.Delete("/{eid}", h.Employee.DeleteBankAccount)
		})

		r.Route("/salary", func(sr chi.Router) {
			sr.Get("/", h.Payroll.GetSalaries)
			sr.Post("/", h.Payroll.CreateSalary)
			sr.Get("/{eid}", h.Payroll.GetSalary)
			sr.Put("/{eid}", h.Payroll.UpdateSalary)
			sr.Delete("/{eid}", h.Payroll.DeleteSalary)
		})

		r.Route("/salary_payments", func(sr chi.Router) {
			sr.Get("/", h.Payroll.GetPayments)
			sr.Post("/", h.Payroll.CreatePayment)
			sr.Get("/{id}", h.Payroll.GetPayment)
			sr.Put("/{id}", h.Payroll.UpdatePayment)
			sr.Delete("/{id}", h.Payroll.DeletePayment)
		})
		r.Get("/employee_payments/{eid}", h.Payroll.GetEmployeePayments)
		r.Post("/mass_payment", h.Payroll.MassPayment)

		r.Route("/training_budgets", func(tr chi.Router) {
			tr.Get("/", h.Training.GetBudgets)
			tr.Post("/", h.Training.CreateBudget)
			tr.Get("/{eid}", h.Training.GetBudget)
			tr.Put("/{eid}", h.Training.UpdateBudget)
			tr.Delete("/{eid}", h.Training.DeleteBudget)
		})

		r.Route("/training_requests", func(tr chi.Router) {
			tr.Get("/", h.Training.GetRequests)
			tr.Post("/", h.Training.CreateRequest)
			tr.Get("/{id}", h.Training.GetRequest)
			tr.Put("/{id}", h.Training.UpdateRequest)
			tr.Delete("/{id}", h.Training.DeleteRequest)
		})

		r.Route("/leave_types", func(lr chi.Router) {
			lr.Get("/", h.Leave.GetTypes)
			lr.Post("/", h.Leave.CreateType)
			lr.Get("/{lid}", h.Leave.GetType)
			lr.Put("/{lid}", h.Leave.UpdateType)
			lr.Delete("/{lid}", h.Leave.DeleteType)
		})

		r.Route("/employee_leave_balances", func(lr chi.Router) {
			lr.Get("/", h.Leave.GetBalances)
			lr.Post("/", h.Leave.CreateBalance)
			lr.Get("/{eid}", h.Leave.GetBalance)
			lr.Put("/{eid}", h.Leave.UpdateBalance)
			lr.Delete("/{eid}", h.Leave.DeleteBalance)
		})

		r.Route("/leave_applications", func(lr chi.Router) {
			lr.Get("/", h.Leave.GetApplications)
			lr.Post("/", h.Leave.CreateApplication)
			lr.Get("/{lid}", h.Leave.GetApplication)
			lr.Put("/{lid}", h.Leave.UpdateApplication)
			lr.Delete("/{lid}", h.Leave.DeleteApplication)
		})
		r.Get("/employee_leave_applications/{eid}", h.Leave.GetEmployeeApplications)

		r.Route("/resource_allocations", func(rr chi.Router) {
			rr.Get("/", h.Resource.GetAllocations)
			rr.Post("/", h.Resource.CreateAllocation)
			rr.Get("/{id}", h.Resource.GetAllocation)
			rr.Put("/{id}", h.Resource.UpdateAllocation)
			rr.Delete("/{id}", h.Resource.DeleteAllocation)
		})
		r.Get("/employee_resource_allocations/{eid}", h.Resource.GetEmployeeAllocations)

		r.Get("/user_types", h.User.GetUserTypes)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Route("/users_management", func(ur chi.Router) {
				ur.Get("/", h.User.GetUsers)
				ur.Post("/", h.User.CreateUser)
				ur.Get("/{eid}", h.User.GetUser)
				ur.Put("/{eid}", h.User.UpdateUser)
				ur.Delete("/{eid}", h.User.DeleteUser)
			})
		})
	})
}
