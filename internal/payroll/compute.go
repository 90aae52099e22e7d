package payroll

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Statutory contribution rates applied to the basic salary.
const (
	EPFEmployeeRate = 0.08
	EPFEmployerRate = 0.12
	ETFEmployerRate = 0.03
)

// Contributions derives the statutory contribution amounts from a basic salary.
func Contributions(basic float64) (epfEmployee, epfEmployer, etfEmployer float64) {
	return basic * EPFEmployeeRate, basic * EPFEmployerRate, basic * ETFEmployerRate
}

// FormatAmount renders a money value the way the API exposes it.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// DeriveContributions fills the contribution fields of a salary DTO from its
// basic salary. Only fields the caller left empty or zeroed are touched, so
// explicitly supplied values always win. An absent basic salary counts as 0,
// so contributions read back "0.00" rather than empty. An unparseable basic
// salary is not an error here: derivation is skipped, a warning is logged, and
// the DTO passes through unchanged for downstream validation to deal with.
func DeriveContributions(dto *SalaryDTO, log *slog.Logger) {
	var basic float64
	if dto.BasicSalary != "" {
		var err error
		basic, err = strconv.ParseFloat(dto.BasicSalary, 64)
		if err != nil {
			log.Warn("skipping contribution derivation: unparseable basic salary",
				"eid", dto.Eid,
				"basic_salary", dto.BasicSalary)
			return
		}
	}

	epfEmployee, epfEmployer, etfEmployer := Contributions(basic)

	if needsDerivation(dto.EPFEmployee) {
		dto.EPFEmployee = FormatAmount(epfEmployee)
	}
	if needsDerivation(dto.EPFEmployer) {
		dto.EPFEmployer = FormatAmount(epfEmployer)
	}
	if needsDerivation(dto.ETFEmployer) {
		dto.ETFEmployer = FormatAmount(etfEmployer)
	}
}

// needsDerivation reports whether a stored contribution value should be
// replaced: absent, empty, or an all-zero amount left behind by older writes.
func needsDerivation(value string) bool {
	return value == "" || value == "0" || value == "0.00"
}
