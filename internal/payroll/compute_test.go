package payroll_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ems-project/ems-backend/internal/payroll"
)

var _ = Describe("Contributions", func() {
	It("should derive all three contributions from the basic salary", func() {
		epfEmployee, epfEmployer, etfEmployer := payroll.Contributions(100000)

		Expect(epfEmployee).To(BeNumerically("~", 8000, 0.001))
		Expect(epfEmployer).To(BeNumerically("~", 12000, 0.001))
		Expect(etfEmployer).To(BeNumerically("~", 3000, 0.001))
	})

	It("should return zero contributions for a zero basic salary", func() {
		epfEmployee, epfEmployer, etfEmployer := payroll.Contributions(0)

		Expect(epfEmployee).To(BeZero())
		Expect(epfEmployer).To(BeZero())
		Expect(etfEmployer).To(BeZero())
	})
})

var _ = Describe("FormatAmount", func() {
	It("should render two decimal places", func() {
		Expect(payroll.FormatAmount(8000)).To(Equal("8000.00"))
		Expect(payroll.FormatAmount(1234.5)).To(Equal("1234.50"))
		Expect(payroll.FormatAmount(0)).To(Equal("0.00"))
	})
})

var _ = Describe("DeriveContributions", func() {
	var logger *slog.Logger

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	})

	Context("when contribution fields are empty", func() {
		It("should fill them from the basic salary", func() {
			dto := &payroll.SalaryDTO{
				Eid:         "E001",
				BasicSalary: "100000",
			}

			payroll.DeriveContributions(dto, logger)

			Expect(dto.EPFEmployee).To(Equal("8000.00"))
			Expect(dto.EPFEmployer).To(Equal("12000.00"))
			Expect(dto.ETFEmployer).To(Equal("3000.00"))
		})
	})

	Context("when contribution fields hold zero placeholders", func() {
		It("should replace them", func() {
			dto := &payroll.SalaryDTO{
				Eid:         "E001",
				BasicSalary: "50000",
				EPFEmployee: "0",
				EPFEmployer: "0.00",
			}

			payroll.DeriveContributions(dto, logger)

			Expect(dto.EPFEmployee).To(Equal("4000.00"))
			Expect(dto.EPFEmployer).To(Equal("6000.00"))
		})
	})

	Context("when a contribution field is explicitly supplied", func() {
		It("should keep the supplied value", func() {
			dto := &payroll.SalaryDTO{
				Eid:         "E001",
				BasicSalary: "100000",
				EPFEmployee: "9999.99",
			}

			payroll.DeriveContributions(dto, logger)

			Expect(dto.EPFEmployee).To(Equal("9999.99"))
			Expect(dto.EPFEmployer).To(Equal("12000.00"))
		})
	})

	Context("when the basic salary is unparseable", func() {
		It("should leave the DTO untouched", func() {
			dto := &payroll.SalaryDTO{
				Eid:         "E001",
				BasicSalary: "not-a-number",
			}

			payroll.DeriveContributions(dto, logger)

			Expect(dto.EPFEmployee).To(Equal(""))
			Expect(dto.EPFEmployer).To(Equal(""))
			Expect(dto.ETFEmployer).To(Equal(""))
		})
	})

	Context("when the basic salary is absent", func() {
		It("should treat it as zero and fill zero contributions", func() {
			dto := &payroll.SalaryDTO{Eid: "E001"}

			payroll.DeriveContributions(dto, logger)

			Expect(dto.EPFEmployee).To(Equal("0.00"))
			Expect(dto.EPFEmployer).To(Equal("0.00"))
			Expect(dto.ETFEmployer).To(Equal("0.00"))
		})

		It("should still keep explicitly supplied contributions", func() {
			dto := &payroll.SalaryDTO{
				Eid:         "E001",
				EPFEmployee: "1234.00",
			}

			payroll.DeriveContributions(dto, logger)

			Expect(dto.EPFEmployee).To(Equal("1234.00"))
			Expect(dto.EPFEmployer).To(Equal("0.00"))
		})
	})
})
