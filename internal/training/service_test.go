package training_test

import (
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ems-project/ems-backend/internal"
	"github.com/ems-project/ems-backend/internal/training"
)

// Mock repository for testing
type mockTrainingRepository struct {
	budgets  map[string]*training.Budget
	requests map[string]*training.Request

	updateRequestError error
}

func newMockTrainingRepository() *mockTrainingRepository {
	return &mockTrainingRepository{
		budgets:  make(map[string]*training.Budget),
		requests: make(map[string]*training.Request),
	}
}

func (m *mockTrainingRepository) AllBudgets() ([]*training.Budget, error) {
	result := make([]*training.Budget, 0, len(m.budgets))
	for _, b := range m.budgets {
		result = append(result, b)
	}
	return result, nil
}

func (m *mockTrainingRepository) BudgetByEid(eid string) (*training.Budget, error) {
	b, ok := m.budgets[eid]
	if !ok {
		return nil, training.ErrBudgetNotFound
	}
	return b, nil
}

func (m *mockTrainingRepository) CreateBudget(b *training.Budget) error {
	if _, ok := m.budgets[b.Eid]; ok {
		return training.ErrDuplicateRecord
	}
	m.budgets[b.Eid] = b
	return nil
}

func (m *mockTrainingRepository) UpdateBudget(b *training.Budget) error {
	m.budgets[b.Eid] = b
	return nil
}

func (m *mockTrainingRepository) DeleteBudget(eid string) error {
	delete(m.budgets, eid)
	return nil
}

func (m *mockTrainingRepository) AllRequests() ([]*training.Request, error) {
	result := make([]*training.Request, 0, len(m.requests))
	for _, r := range m.requests {
		result = append(result, r)
	}
	return result, nil
}

func (m *mockTrainingRepository) RequestByEid(eid string) (*training.Request, error) {
	r, ok := m.requests[eid]
	if !ok {
		return nil, training.ErrRequestNotFound
	}
	return r, nil
}

func (m *mockTrainingRepository) CreateRequest(req *training.Request) error {
	if _, ok := m.requests[req.Eid]; ok {
		return training.ErrDuplicateRecord
	}
	m.requests[req.Eid] = req
	return nil
}

func (m *mockTrainingRepository) UpdateRequest(req *training.Request) error {
	if m.updateRequestError != nil {
		return m.updateRequestError
	}
	m.requests[req.Eid] = req
	return nil
}

func (m *mockTrainingRepository) DeleteRequest(eid string) error {
	delete(m.requests, eid)
	return nil
}

func strPtr(s string) *string { return &s }

var _ = Describe("Training Service", func() {
	var (
		repo    *mockTrainingRepository
		service *training.Service
	)

	BeforeEach(func() {
		repo = newMockTrainingRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = training.NewService(repo, logger)
	})

	Describe("CreateRequest", func() {
		It("should default the status to Pending", func() {
			created, err := service.CreateRequest(training.CreateRequestDTO{
				Eid:             "E001",
				RequestedAmount: "50000",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(Equal("tr_E001"))
			Expect(created.Status).To(Equal(training.StatusPending))
			Expect(created.RequestedAmount).To(Equal("50000.00"))
		})

		It("should reject a second request for the same employee", func() {
			_, err := service.CreateRequest(training.CreateRequestDTO{Eid: "E001"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateRequest(training.CreateRequestDTO{Eid: "E001"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})

		It("should reject an unparseable amount", func() {
			_, err := service.CreateRequest(training.CreateRequestDTO{
				Eid:             "E001",
				RequestedAmount: "fifty thousand",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})
	})

	Describe("RequestByID", func() {
		BeforeEach(func() {
			_, err := service.CreateRequest(training.CreateRequestDTO{
				Eid:             "E001",
				RequestedAmount: "25000",
				Reason:          "conference",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should resolve a prefixed display id", func() {
			found, err := service.RequestByID("tr_E001")

			Expect(err).NotTo(HaveOccurred())
			Expect(found.Eid).To(Equal("E001"))
			Expect(found.Reason).To(Equal("conference"))
		})

		It("should resolve a bare employee id", func() {
			found, err := service.RequestByID("E001")

			Expect(err).NotTo(HaveOccurred())
			Expect(found.Eid).To(Equal("E001"))
		})

		It("should return 404 for an unknown employee", func() {
			_, err := service.RequestByID("tr_E999")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})

	Describe("UpdateRequest", func() {
		BeforeEach(func() {
			_, err := service.CreateRequest(training.CreateRequestDTO{
				Eid:             "E001",
				RequestedAmount: "25000",
				Reason:          "conference",
				AppliedDate:     "2025-05-01",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		Context("when approving without a granted date", func() {
			It("should stamp today as the granted date", func() {
				// Given: a pending request with no granted date
				// When: approving it without supplying one
				updated, err := service.UpdateRequest("tr_E001", training.UpdateRequestDTO{
					Status: strPtr(training.StatusApproved),
				})

				// Then: the granted date is today
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Status).To(Equal(training.StatusApproved))
				Expect(updated.GrantedDate).To(Equal(time.Now().Format("2006-01-02")))
			})
		})

		Context("when approving with an explicit granted date", func() {
			It("should keep the supplied date", func() {
				updated, err := service.UpdateRequest("tr_E001", training.UpdateRequestDTO{
					Status:      strPtr(training.StatusApproved),
					GrantedDate: strPtr("2025-05-10"),
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(updated.GrantedDate).To(Equal("2025-05-10"))
			})
		})

		Context("when a granted date is already stored", func() {
			It("should not overwrite it on re-approval", func() {
				_, err := service.UpdateRequest("tr_E001", training.UpdateRequestDTO{
					Status:      strPtr(training.StatusApproved),
					GrantedDate: strPtr("2025-05-10"),
				})
				Expect(err).NotTo(HaveOccurred())

				updated, err := service.UpdateRequest("tr_E001", training.UpdateRequestDTO{
					Status: strPtr(training.StatusApproved),
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(updated.GrantedDate).To(Equal("2025-05-10"))
			})
		})

		Context("merge semantics", func() {
			It("should keep stored values for omitted fields", func() {
				updated, err := service.UpdateRequest("tr_E001", training.UpdateRequestDTO{
					RequestedAmount: strPtr("30000"),
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(updated.RequestedAmount).To(Equal("30000.00"))
				Expect(updated.Reason).To(Equal("conference"))
				Expect(updated.AppliedDate).To(Equal("2025-05-01"))
			})

			It("should clear a field set to the empty string", func() {
				updated, err := service.UpdateRequest("tr_E001", training.UpdateRequestDTO{
					Reason: strPtr(""),
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Reason).To(Equal(""))
			})
		})

		It("should reject an invalid granted date", func() {
			_, err := service.UpdateRequest("tr_E001", training.UpdateRequestDTO{
				GrantedDate: strPtr("next week"),
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("should return 404 for an unknown request", func() {
			_, err := service.UpdateRequest("tr_E999", training.UpdateRequestDTO{
				Status: strPtr(training.StatusApproved),
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})

	Describe("DeleteRequest", func() {
		It("should delete by display id", func() {
			_, err := service.CreateRequest(training.CreateRequestDTO{Eid: "E001"})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteRequest("tr_E001")).To(Succeed())

			_, err = service.RequestByID("tr_E001")
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})

	Describe("Budgets", func() {
		It("should create and fetch a budget with formatted amounts", func() {
			_, err := service.CreateBudget(training.BudgetDTO{
				Eid:             "E001",
				BudgetRate:      "0.05",
				BudgetAmount:    "100000",
				RemainingAmount: "75000",
			})
			Expect(err).NotTo(HaveOccurred())

			found, err := service.BudgetByEid("E001")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.BudgetAmount).To(Equal("100000.00"))
			Expect(found.RemainingAmount).To(Equal("75000.00"))
		})

		It("should reject a duplicate budget", func() {
			_, err := service.CreateBudget(training.BudgetDTO{Eid: "E001", BudgetAmount: "100000"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateBudget(training.BudgetDTO{Eid: "E001", BudgetAmount: "50000"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})

		It("should reject an invalid amount", func() {
			_, err := service.CreateBudget(training.BudgetDTO{Eid: "E001", BudgetAmount: "lots"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("should return 404 for an unknown employee", func() {
			_, err := service.BudgetByEid("E999")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})
})
