package leave_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ems-project/ems-backend/internal"
	"github.com/ems-project/ems-backend/internal/leave"
)

// Mock repository for testing
type mockLeaveRepository struct {
	types        map[string]*leave.LeaveType
	balances     map[string]*leave.Balance
	applications map[string]*leave.Application

	countError  error
	createError error
}

func newMockLeaveRepository() *mockLeaveRepository {
	return &mockLeaveRepository{
		types:        make(map[string]*leave.LeaveType),
		balances:     make(map[string]*leave.Balance),
		applications: make(map[string]*leave.Application),
	}
}

func (m *mockLeaveRepository) AllTypes() ([]*leave.LeaveType, error) {
	result := make([]*leave.LeaveType, 0, len(m.types))
	for _, t := range m.types {
		result = append(result, t)
	}
	return result, nil
}

func (m *mockLeaveRepository) TypeByLid(lid string) (*leave.LeaveType, error) {
	t, ok := m.types[lid]
	if !ok {
		return nil, leave.ErrTypeNotFound
	}
	return t, nil
}

func (m *mockLeaveRepository) CreateType(t *leave.LeaveType) error {
	if _, ok := m.types[t.Lid]; ok {
		return leave.ErrDuplicateRecord
	}
	m.types[t.Lid] = t
	return nil
}

func (m *mockLeaveRepository) UpdateType(t *leave.LeaveType) error {
	m.types[t.Lid] = t
	return nil
}

func (m *mockLeaveRepository) DeleteType(lid string) error {
	delete(m.types, lid)
	return nil
}

func (m *mockLeaveRepository) AllBalances() ([]*leave.Balance, error) {
	result := make([]*leave.Balance, 0, len(m.balances))
	for _, b := range m.balances {
		result = append(result, b)
	}
	return result, nil
}

func (m *mockLeaveRepository) BalanceByEid(eid string) (*leave.Balance, error) {
	b, ok := m.balances[eid]
	if !ok {
		return nil, leave.ErrBalanceNotFound
	}
	return b, nil
}

func (m *mockLeaveRepository) CreateBalance(b *leave.Balance) error {
	if _, ok := m.balances[b.Eid]; ok {
		return leave.ErrDuplicateRecord
	}
	m.balances[b.Eid] = b
	return nil
}

func (m *mockLeaveRepository) UpdateBalance(b *leave.Balance) error {
	m.balances[b.Eid] = b
	return nil
}

func (m *mockLeaveRepository) DeleteBalance(eid string) error {
	delete(m.balances, eid)
	return nil
}

func (m *mockLeaveRepository) AllApplications() ([]*leave.Application, error) {
	result := make([]*leave.Application, 0, len(m.applications))
	for _, a := range m.applications {
		result = append(result, a)
	}
	return result, nil
}

func (m *mockLeaveRepository) ApplicationsByEid(eid string) ([]*leave.Application, error) {
	var result []*leave.Application
	for _, a := range m.applications {
		if a.Eid == eid {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockLeaveRepository) ApplicationByLid(lid string) (*leave.Application, error) {
	a, ok := m.applications[lid]
	if !ok {
		return nil, leave.ErrApplicationNotFound
	}
	return a, nil
}

func (m *mockLeaveRepository) CreateApplication(a *leave.Application) error {
	if m.createError != nil {
		return m.createError
	}
	if _, ok := m.applications[a.Lid]; ok {
		return leave.ErrDuplicateRecord
	}
	m.applications[a.Lid] = a
	return nil
}

func (m *mockLeaveRepository) UpdateApplication(a *leave.Application) error {
	m.applications[a.Lid] = a
	return nil
}

func (m *mockLeaveRepository) DeleteApplication(lid string) error {
	delete(m.applications, lid)
	return nil
}

func (m *mockLeaveRepository) CountApplications() (int64, error) {
	if m.countError != nil {
		return 0, m.countError
	}
	return int64(len(m.applications)), nil
}

func (m *mockLeaveRepository) ApplicationExists(lid string) (bool, error) {
	_, ok := m.applications[lid]
	return ok, nil
}

var _ = Describe("Leave Service", func() {
	var (
		repo    *mockLeaveRepository
		service *leave.Service
	)

	BeforeEach(func() {
		repo = newMockLeaveRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = leave.NewService(repo, logger)
	})

	Describe("CreateApplication", func() {
		Context("when no lid is supplied", func() {
			It("should generate one and apply the default status and priority", func() {
				// Given: an application without lid, status or priority
				dto := leave.ApplicationDTO{
					Eid:      "E001",
					FromDate: "2025-06-01",
					ToDate:   "2025-06-03",
					NoOfDays: 3,
				}

				// When: creating the application
				created, err := service.CreateApplication(dto)

				// Then: a lid is generated and defaults are filled
				Expect(err).NotTo(HaveOccurred())
				Expect(created.Lid).To(Equal("L001"))
				Expect(created.Status).To(Equal(leave.StatusPending))
				Expect(created.Priority).To(Equal(leave.PriorityMedium))
			})

			It("should number consecutive applications", func() {
				dto := leave.ApplicationDTO{
					Eid:      "E001",
					FromDate: "2025-06-01",
					ToDate:   "2025-06-03",
					NoOfDays: 3,
				}

				first, err := service.CreateApplication(dto)
				Expect(err).NotTo(HaveOccurred())
				second, err := service.CreateApplication(dto)
				Expect(err).NotTo(HaveOccurred())

				Expect(first.Lid).To(Equal("L001"))
				Expect(second.Lid).To(Equal("L002"))
			})
		})

		Context("when status and priority are supplied", func() {
			It("should keep the supplied values", func() {
				dto := leave.ApplicationDTO{
					Eid:      "E001",
					FromDate: "2025-06-01",
					ToDate:   "2025-06-03",
					NoOfDays: 3,
					Status:   leave.StatusApproved,
					Priority: leave.PriorityHigh,
				}

				created, err := service.CreateApplication(dto)

				Expect(err).NotTo(HaveOccurred())
				Expect(created.Status).To(Equal(leave.StatusApproved))
				Expect(created.Priority).To(Equal(leave.PriorityHigh))
			})
		})

		Context("when the supplied lid already exists", func() {
			It("should return a conflict error", func() {
				dto := leave.ApplicationDTO{
					Lid:      "L001",
					Eid:      "E001",
					FromDate: "2025-06-01",
					ToDate:   "2025-06-03",
					NoOfDays: 3,
				}
				_, err := service.CreateApplication(dto)
				Expect(err).NotTo(HaveOccurred())

				_, err = service.CreateApplication(dto)

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(409))
				Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateLeaveID))
			})
		})

		Context("when the dates are invalid", func() {
			It("should reject a missing from_date", func() {
				dto := leave.ApplicationDTO{
					Eid:      "E001",
					ToDate:   "2025-06-03",
					NoOfDays: 3,
				}

				_, err := service.CreateApplication(dto)

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
			})

			It("should reject a to_date before the from_date", func() {
				dto := leave.ApplicationDTO{
					Eid:      "E001",
					FromDate: "2025-06-03",
					ToDate:   "2025-06-01",
					NoOfDays: 3,
				}

				_, err := service.CreateApplication(dto)

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
			})

			It("should reject an unparseable date", func() {
				dto := leave.ApplicationDTO{
					Eid:      "E001",
					FromDate: "June 1st",
					ToDate:   "2025-06-03",
					NoOfDays: 3,
				}

				_, err := service.CreateApplication(dto)

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
			})
		})

		Context("when no_of_days is not positive", func() {
			It("should return a validation error", func() {
				dto := leave.ApplicationDTO{
					Eid:      "E001",
					FromDate: "2025-06-01",
					ToDate:   "2025-06-03",
					NoOfDays: 0,
				}

				_, err := service.CreateApplication(dto)

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
			})
		})
	})

	Describe("ApplicationByLid", func() {
		It("should return a stored application as a DTO", func() {
			dto := leave.ApplicationDTO{
				Eid:         "E001",
				FromDate:    "2025-06-01",
				ToDate:      "2025-06-03",
				NoOfDays:    3,
				Description: "family event",
			}
			created, err := service.CreateApplication(dto)
			Expect(err).NotTo(HaveOccurred())

			found, err := service.ApplicationByLid(created.Lid)

			Expect(err).NotTo(HaveOccurred())
			Expect(found.Eid).To(Equal("E001"))
			Expect(found.FromDate).To(Equal("2025-06-01"))
			Expect(found.ToDate).To(Equal("2025-06-03"))
			Expect(found.Description).To(Equal("family event"))
		})

		It("should return 404 for an unknown lid", func() {
			_, err := service.ApplicationByLid("L999")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})

	Describe("UpdateApplication", func() {
		It("should replace the stored application", func() {
			dto := leave.ApplicationDTO{
				Eid:      "E001",
				FromDate: "2025-06-01",
				ToDate:   "2025-06-03",
				NoOfDays: 3,
			}
			created, err := service.CreateApplication(dto)
			Expect(err).NotTo(HaveOccurred())

			dto.Status = leave.StatusApproved
			updated, err := service.UpdateApplication(created.Lid, dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Lid).To(Equal(created.Lid))
			Expect(updated.Status).To(Equal(leave.StatusApproved))
		})

		It("should return 404 when the application does not exist", func() {
			dto := leave.ApplicationDTO{
				Eid:      "E001",
				FromDate: "2025-06-01",
				ToDate:   "2025-06-03",
				NoOfDays: 3,
			}

			_, err := service.UpdateApplication("L999", dto)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})

	Describe("DeleteApplication", func() {
		It("should remove the application", func() {
			dto := leave.ApplicationDTO{
				Eid:      "E001",
				FromDate: "2025-06-01",
				ToDate:   "2025-06-03",
				NoOfDays: 3,
			}
			created, err := service.CreateApplication(dto)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteApplication(created.Lid)).To(Succeed())

			_, err = service.ApplicationByLid(created.Lid)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})

	Describe("Leave types", func() {
		It("should create and fetch a type", func() {
			created, err := service.CreateType(leave.LeaveTypeDTO{Lid: "LT01", LeaveType: "Annual"})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Lid).To(Equal("LT01"))

			found, err := service.TypeByLid("LT01")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.LeaveType).To(Equal("Annual"))
		})

		It("should reject a duplicate type", func() {
			_, err := service.CreateType(leave.LeaveTypeDTO{Lid: "LT01", LeaveType: "Annual"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateType(leave.LeaveTypeDTO{Lid: "LT01", LeaveType: "Casual"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})
	})

	Describe("Leave balances", func() {
		It("should create and fetch a balance", func() {
			total := 14
			remaining := 10
			_, err := service.CreateBalance(leave.BalanceDTO{
				Eid:                "E001",
				TotalAnnualLeaves:  &total,
				AnnualLeaveBalance: &remaining,
			})
			Expect(err).NotTo(HaveOccurred())

			found, err := service.BalanceByEid("E001")
			Expect(err).NotTo(HaveOccurred())
			Expect(*found.TotalAnnualLeaves).To(Equal(14))
			Expect(*found.AnnualLeaveBalance).To(Equal(10))
		})

		It("should return 404 for an unknown employee", func() {
			_, err := service.BalanceByEid("E999")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})
})
