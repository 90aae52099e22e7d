package payroll_test

import (
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ems-project/ems-backend/internal"
	"github.com/ems-project/ems-backend/internal/payroll"
)

// Mock repository for testing
type mockPayrollRepository struct {
	salaries    map[string]*payroll.SalaryRecord
	salaryOrder []string
	payments    []*payroll.Payment
	nextRowID   int64

	listSalariesError error
	createError       error
}

func newMockPayrollRepository() *mockPayrollRepository {
	return &mockPayrollRepository{
		salaries:  make(map[string]*payroll.SalaryRecord),
		payments:  make([]*payroll.Payment, 0),
		nextRowID: 1,
	}
}

func (m *mockPayrollRepository) addSalary(rec *payroll.SalaryRecord) {
	m.salaries[rec.Eid] = rec
	m.salaryOrder = append(m.salaryOrder, rec.Eid)
}

func (m *mockPayrollRepository) AllSalaries() ([]*payroll.SalaryRecord, error) {
	if m.listSalariesError != nil {
		return nil, m.listSalariesError
	}
	records := make([]*payroll.SalaryRecord, 0, len(m.salaryOrder))
	for _, eid := range m.salaryOrder {
		records = append(records, m.salaries[eid])
	}
	return records, nil
}

func (m *mockPayrollRepository) SalaryByEid(eid string) (*payroll.SalaryRecord, error) {
	rec, ok := m.salaries[eid]
	if !ok {
		return nil, payroll.ErrSalaryNotFound
	}
	return rec, nil
}

func (m *mockPayrollRepository) CreateSalary(rec *payroll.SalaryRecord) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.salaries[rec.Eid]; exists {
		return payroll.ErrDuplicateRecord
	}
	m.addSalary(rec)
	return nil
}

func (m *mockPayrollRepository) UpdateSalary(rec *payroll.SalaryRecord) error {
	m.salaries[rec.Eid] = rec
	return nil
}

func (m *mockPayrollRepository) DeleteSalary(eid string) error {
	delete(m.salaries, eid)
	return nil
}

func (m *mockPayrollRepository) AllPayments() ([]*payroll.Payment, error) {
	return m.payments, nil
}

func (m *mockPayrollRepository) PaymentsByEid(eid string) ([]*payroll.Payment, error) {
	result := make([]*payroll.Payment, 0)
	for _, p := range m.payments {
		if p.Eid == eid {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPayrollRepository) PaymentByEidAndDate(eid string, date time.Time) (*payroll.Payment, error) {
	for _, p := range m.payments {
		if p.Eid == eid && p.PaidDate != nil && p.PaidDate.Equal(date) {
			return p, nil
		}
	}
	return nil, payroll.ErrPaymentNotFound
}

func (m *mockPayrollRepository) LatestPaymentByEid(eid string) (*payroll.Payment, error) {
	var latest *payroll.Payment
	for _, p := range m.payments {
		if p.Eid != eid {
			continue
		}
		if latest == nil {
			latest = p
			continue
		}
		if p.PaidDate != nil && (latest.PaidDate == nil || p.PaidDate.After(*latest.PaidDate)) {
			latest = p
		}
	}
	if latest == nil {
		return nil, payroll.ErrPaymentNotFound
	}
	return latest, nil
}

func (m *mockPayrollRepository) CreatePayment(p *payroll.Payment) error {
	p.RowID = m.nextRowID
	m.nextRowID++
	m.payments = append(m.payments, p)
	return nil
}

func (m *mockPayrollRepository) CreatePaymentForDate(eid string, amount *float64, date time.Time) error {
	for _, p := range m.payments {
		if p.Eid == eid && p.PaidDate != nil && p.PaidDate.Equal(date) {
			return payroll.ErrDuplicatePayment
		}
	}
	d := date
	m.payments = append(m.payments, &payroll.Payment{
		RowID:    m.nextRowID,
		Eid:      eid,
		Amount:   amount,
		PaidDate: &d,
	})
	m.nextRowID++
	return nil
}

func (m *mockPayrollRepository) UpdatePayment(p *payroll.Payment) error {
	for i, existing := range m.payments {
		if existing.RowID == p.RowID {
			m.payments[i] = p
			return nil
		}
	}
	return payroll.ErrPaymentNotFound
}

func (m *mockPayrollRepository) DeletePayment(rowID int64) error {
	for i, p := range m.payments {
		if p.RowID == rowID {
			m.payments = append(m.payments[:i], m.payments[i+1:]...)
			return nil
		}
	}
	return nil
}

func floatPtr(v float64) *float64 { return &v }

var _ = Describe("PayrollService", func() {
	var (
		service  *payroll.Service
		mockRepo *mockPayrollRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockPayrollRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = payroll.NewService(mockRepo, logger)
	})

	Describe("CreateSalary", func() {
		It("should derive contributions before storing", func() {
			dto := payroll.SalaryDTO{
				Eid:         "E001",
				BasicSalary: "100000",
				NetSalary:   "95000",
			}

			result, err := service.CreateSalary(dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(result.EPFEmployee).To(Equal("8000.00"))
			Expect(result.EPFEmployer).To(Equal("12000.00"))
			Expect(result.ETFEmployer).To(Equal("3000.00"))

			stored := mockRepo.salaries["E001"]
			Expect(stored).NotTo(BeNil())
			Expect(*stored.EPFEmployee).To(BeNumerically("~", 8000, 0.001))
		})

		It("should reject an invalid amount", func() {
			dto := payroll.SalaryDTO{
				Eid:       "E001",
				NetSalary: "abc",
			}

			_, err := service.CreateSalary(dto)

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("should report a conflict for a duplicate employee", func() {
			dto := payroll.SalaryDTO{Eid: "E001", NetSalary: "95000"}
			_, err := service.CreateSalary(dto)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateSalary(dto)
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(409))
		})
	})

	Describe("SalaryByEid", func() {
		It("should derive contributions on read for rows that predate derivation", func() {
			mockRepo.addSalary(&payroll.SalaryRecord{
				Eid:         "E001",
				BasicSalary: floatPtr(100000),
			})

			result, err := service.SalaryByEid("E001")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.EPFEmployee).To(Equal("8000.00"))
		})

		It("should read back zero contributions for a row with no basic salary", func() {
			// Given: a legacy row where basic and all contributions are null
			mockRepo.addSalary(&payroll.SalaryRecord{Eid: "E001"})

			// When: reading it back
			result, err := service.SalaryByEid("E001")

			// Then: contributions surface as "0.00", never empty
			Expect(err).NotTo(HaveOccurred())
			Expect(result.EPFEmployee).To(Equal("0.00"))
			Expect(result.EPFEmployer).To(Equal("0.00"))
			Expect(result.ETFEmployer).To(Equal("0.00"))
		})

		It("should return not found for a missing record", func() {
			_, err := service.SalaryByEid("E999")

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})

	Describe("PaymentByID", func() {
		BeforeEach(func() {
			older := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
			newer := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
			mockRepo.payments = []*payroll.Payment{
				{RowID: 1, Eid: "E001", Amount: floatPtr(90000), PaidDate: &older},
				{RowID: 2, Eid: "E001", Amount: floatPtr(95000), PaidDate: &newer},
			}
			mockRepo.nextRowID = 3
		})

		It("should resolve a dated composite id", func() {
			result, err := service.PaymentByID("E001_20250115")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Salary).To(Equal("90000.00"))
			Expect(result.PaidDate).To(Equal("2025-01-15"))
		})

		It("should resolve an unknown-date id to the most recent payment", func() {
			result, err := service.PaymentByID("E001_unknown")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Salary).To(Equal("95000.00"))
		})

		It("should treat a malformed id as a validation failure, not a missing record", func() {
			_, err := service.PaymentByID("garbage")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("should return not found for a well-formed id with no payment", func() {
			_, err := service.PaymentByID("E999_20250115")

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(404))
		})
	})

	Describe("ProcessMassPayment", func() {
		BeforeEach(func() {
			mockRepo.addSalary(&payroll.SalaryRecord{Eid: "E001", NetSalary: floatPtr(90000)})
			mockRepo.addSalary(&payroll.SalaryRecord{Eid: "E002", NetSalary: floatPtr(85000)})
		})

		Context("when all employees can be paid", func() {
			It("should pay everyone and report success", func() {
				result, err := service.ProcessMassPayment(payroll.MassPaymentDTO{
					EmployeeIDs: []string{"E001", "E002"},
					PaymentDate: "2025-03-01",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())
				Expect(result.SuccessCount).To(Equal(2))
				Expect(result.FailedCount).To(Equal(0))
				Expect(result.TotalAmount).To(BeNumerically("~", 175000, 0.001))
				Expect(result.PaymentDate).To(Equal("2025-03-01"))
				Expect(result.BatchID).NotTo(BeEmpty())
				Expect(mockRepo.payments).To(HaveLen(2))
			})
		})

		Context("when one employee has no salary record", func() {
			It("should record the failure and keep processing the rest", func() {
				result, err := service.ProcessMassPayment(payroll.MassPaymentDTO{
					EmployeeIDs: []string{"E001", "E003", "E002"},
					PaymentDate: "2025-03-01",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeTrue())
				Expect(result.SuccessCount).To(Equal(2))
				Expect(result.FailedCount).To(Equal(1))
				Expect(result.FailedPayments).To(HaveLen(1))
				Expect(result.FailedPayments[0].Eid).To(Equal("E003"))
				Expect(result.FailedPayments[0].Error).To(Equal("No salary record found for this employee"))
			})
		})

		Context("when re-run for the same date", func() {
			It("should fail every employee with the duplicate reason and report failure", func() {
				dto := payroll.MassPaymentDTO{
					EmployeeIDs: []string{"E001", "E002"},
					PaymentDate: "2025-03-01",
				}

				first, err := service.ProcessMassPayment(dto)
				Expect(err).NotTo(HaveOccurred())
				Expect(first.SuccessCount).To(Equal(2))

				second, err := service.ProcessMassPayment(dto)
				Expect(err).NotTo(HaveOccurred())
				Expect(second.Success).To(BeFalse())
				Expect(second.SuccessCount).To(Equal(0))
				Expect(second.FailedCount).To(Equal(2))
				for _, f := range second.FailedPayments {
					Expect(f.Error).To(Equal("Payment already exists for this date"))
				}
				// no extra rows were written
				Expect(mockRepo.payments).To(HaveLen(2))
			})
		})

		Context("when the employee list is omitted", func() {
			It("should pay every employee with a salary record", func() {
				result, err := service.ProcessMassPayment(payroll.MassPaymentDTO{
					PaymentDate: "2025-03-01",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.SuccessCount).To(Equal(2))
			})
		})

		Context("when the employee list is explicitly empty", func() {
			It("should process nobody and report failure", func() {
				result, err := service.ProcessMassPayment(payroll.MassPaymentDTO{
					EmployeeIDs: []string{},
					PaymentDate: "2025-03-01",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Success).To(BeFalse())
				Expect(result.SuccessCount).To(Equal(0))
				Expect(result.FailedCount).To(Equal(0))
			})
		})

		Context("when the payment date is invalid", func() {
			It("should reject the request", func() {
				_, err := service.ProcessMassPayment(payroll.MassPaymentDTO{
					PaymentDate: "03/01/2025",
				})

				Expect(err).To(HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
			})
		})

		Context("when listing salary records fails", func() {
			It("should abort before paying anyone", func() {
				mockRepo.listSalariesError = errors.New("database error")

				_, err := service.ProcessMassPayment(payroll.MassPaymentDTO{
					PaymentDate: "2025-03-01",
				})

				Expect(err).To(HaveOccurred())
				Expect(mockRepo.payments).To(BeEmpty())
			})
		})
	})
})
