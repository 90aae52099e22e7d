package payroll

import (
	"errors"
	"log/slog"
	"time"

	"github.com/ems-project/ems-backend/internal"
	"github.com/google/uuid"
)

// Service handles salary and payment business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// AllSalaries lists every salary record with contributions derived for rows
// that predate derivation.
func (s *Service) AllSalaries() ([]*SalaryDTO, error) {
	records, err := s.repo.AllSalaries()
	if err != nil {
		s.logger.Error("failed to list salaries", "error", err)
		return nil, internal.NewInternalError("failed to list salaries", err)
	}

	result := make([]*SalaryDTO, len(records))
	for i, rec := range records {
		dto := SalaryDTOFromRecord(rec)
		DeriveContributions(dto, s.logger)
		result[i] = dto
	}
	return result, nil
}

func (s *Service) SalaryByEid(eid string) (*SalaryDTO, error) {
	rec, err := s.repo.SalaryByEid(eid)
	if err != nil {
		if errors.Is(err, ErrSalaryNotFound) {
			return nil, internal.NewNotFoundError("salary record not found", internal.ErrCodeSalaryNotFound)
		}
		s.logger.Error("failed to get salary", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to get salary", err)
	}

	dto := SalaryDTOFromRecord(rec)
	DeriveContributions(dto, s.logger)
	return dto, nil
}

func (s *Service) CreateSalary(dto SalaryDTO) (*SalaryDTO, error) {
	DeriveContributions(&dto, s.logger)

	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeInvalidAmount)
	}

	rec := dto.ToRecord()
	if err := s.repo.CreateSalary(rec); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			return nil, internal.NewConflictError("salary record already exists for this employee", internal.ErrCodeDuplicateRecord)
		}
		s.logger.Error("failed to create salary", "error", err, "eid", dto.Eid)
		return nil, internal.NewInternalError("failed to create salary", err)
	}

	s.logger.Info("salary record created", "eid", dto.Eid)
	return SalaryDTOFromRecord(rec), nil
}

func (s *Service) UpdateSalary(eid string, dto SalaryDTO) (*SalaryDTO, error) {
	if _, err := s.repo.SalaryByEid(eid); err != nil {
		if errors.Is(err, ErrSalaryNotFound) {
			return nil, internal.NewNotFoundError("salary record not found", internal.ErrCodeSalaryNotFound)
		}
		s.logger.Error("failed to load salary for update", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to update salary", err)
	}

	dto.Eid = eid
	DeriveContributions(&dto, s.logger)

	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeInvalidAmount)
	}

	rec := dto.ToRecord()
	if err := s.repo.UpdateSalary(rec); err != nil {
		s.logger.Error("failed to update salary", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to update salary", err)
	}

	s.logger.Info("salary record updated", "eid", eid)
	return SalaryDTOFromRecord(rec), nil
}

func (s *Service) DeleteSalary(eid string) error {
	if _, err := s.repo.SalaryByEid(eid); err != nil {
		if errors.Is(err, ErrSalaryNotFound) {
			return internal.NewNotFoundError("salary record not found", internal.ErrCodeSalaryNotFound)
		}
		s.logger.Error("failed to load salary for delete", "error", err, "eid", eid)
		return internal.NewInternalError("failed to delete salary", err)
	}

	if err := s.repo.DeleteSalary(eid); err != nil {
		s.logger.Error("failed to delete salary", "error", err, "eid", eid)
		return internal.NewInternalError("failed to delete salary", err)
	}

	s.logger.Info("salary record deleted", "eid", eid)
	return nil
}

// AllPayments lists every payment with its composite display id.
func (s *Service) AllPayments() ([]*PaymentDTO, error) {
	payments, err := s.repo.AllPayments()
	if err != nil {
		s.logger.Error("failed to list payments", "error", err)
		return nil, internal.NewInternalError("failed to list payments", err)
	}
	return PaymentDTOsFromPayments(payments), nil
}

func (s *Service) PaymentsByEmployee(eid string) ([]*PaymentDTO, error) {
	payments, err := s.repo.PaymentsByEid(eid)
	if err != nil {
		s.logger.Error("failed to list employee payments", "error", err, "eid", eid)
		return nil, internal.NewInternalError("failed to list employee payments", err)
	}
	return PaymentDTOsFromPayments(payments), nil
}

func (s *Service) PaymentByID(id string) (*PaymentDTO, error) {
	payment, err := s.resolvePayment(id)
	if err != nil {
		return nil, err
	}
	return PaymentDTOFromPayment(payment), nil
}

func (s *Service) CreatePayment(dto CreatePaymentDTO) (*PaymentDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	payment := dto.ToPayment()
	if err := s.repo.CreatePayment(payment); err != nil {
		if errors.Is(err, ErrDuplicatePayment) {
			return nil, internal.NewConflictError(FailureDuplicatePayment, internal.ErrCodeDuplicatePayment)
		}
		s.logger.Error("failed to create payment", "error", err, "eid", dto.Eid)
		return nil, internal.NewInternalError("failed to create payment", err)
	}

	s.logger.Info("payment created", "eid", payment.Eid, "payment_id", payment.DisplayID())
	return PaymentDTOFromPayment(payment), nil
}

func (s *Service) UpdatePayment(id string, dto CreatePaymentDTO) (*PaymentDTO, error) {
	payment, err := s.resolvePayment(id)
	if err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	updated := dto.ToPayment()
	updated.RowID = payment.RowID
	if updated.Eid == "" {
		updated.Eid = payment.Eid
	}

	if err := s.repo.UpdatePayment(updated); err != nil {
		if errors.Is(err, ErrDuplicatePayment) {
			return nil, internal.NewConflictError(FailureDuplicatePayment, internal.ErrCodeDuplicatePayment)
		}
		s.logger.Error("failed to update payment", "error", err, "payment_id", id)
		return nil, internal.NewInternalError("failed to update payment", err)
	}

	s.logger.Info("payment updated", "payment_id", updated.DisplayID())
	return PaymentDTOFromPayment(updated), nil
}

func (s *Service) DeletePayment(id string) error {
	payment, err := s.resolvePayment(id)
	if err != nil {
		return err
	}

	if err := s.repo.DeletePayment(payment.RowID); err != nil {
		s.logger.Error("failed to delete payment", "error", err, "payment_id", id)
		return internal.NewInternalError("failed to delete payment", err)
	}

	s.logger.Info("payment deleted", "payment_id", id)
	return nil
}

// resolvePayment turns a composite id into a stored payment. An unknown-date
// id resolves to the employee's most recent payment. Malformed ids are a
// validation failure, never a not-found.
func (s *Service) resolvePayment(id string) (*Payment, error) {
	eid, paidDate, err := DecodePaymentID(id)
	if err != nil {
		return nil, internal.NewValidationError("invalid payment id format: "+id, internal.ErrCodeMalformedID)
	}

	var payment *Payment
	if paidDate == nil {
		payment, err = s.repo.LatestPaymentByEid(eid)
	} else {
		payment, err = s.repo.PaymentByEidAndDate(eid, *paidDate)
	}

	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			return nil, internal.NewNotFoundError("payment record not found", internal.ErrCodePaymentNotFound)
		}
		s.logger.Error("failed to resolve payment", "error", err, "payment_id", id)
		return nil, internal.NewInternalError("failed to resolve payment", err)
	}

	return payment, nil
}

// ProcessMassPayment pays every requested employee for the given date. Each
// employee is handled in isolation: one failure is recorded in the outcome and
// never aborts the rest of the batch.
func (s *Service) ProcessMassPayment(dto MassPaymentDTO) (*MassPaymentResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeInvalidDate)
	}

	batchID := uuid.NewString()

	paymentDate := dateOnly(s.now())
	if dto.PaymentDate != "" {
		d, _ := time.Parse(dateLayout, dto.PaymentDate)
		paymentDate = d
	}

	employeeIDs := dto.EmployeeIDs
	if employeeIDs == nil {
		records, err := s.repo.AllSalaries()
		if err != nil {
			s.logger.Error("mass payment: failed to list salary records",
				"error", err, "batch_id", batchID)
			return nil, internal.NewInternalError("failed to list salary records", err)
		}
		employeeIDs = make([]string, len(records))
		for i, rec := range records {
			employeeIDs[i] = rec.Eid
		}
	}

	s.logger.Info("mass payment started",
		"batch_id", batchID,
		"employee_count", len(employeeIDs),
		"payment_date", paymentDate.Format(dateLayout))

	result := &MassPaymentResult{
		BatchID:        batchID,
		FailedPayments: []FailedPayment{},
		PaymentDate:    paymentDate.Format(dateLayout),
	}

	for _, eid := range employeeIDs {
		reason, amount := s.payEmployee(eid, paymentDate)
		if reason != "" {
			result.FailedPayments = append(result.FailedPayments, FailedPayment{Eid: eid, Error: reason})
			s.logger.Warn("mass payment: employee failed",
				"batch_id", batchID, "eid", eid, "reason", reason)
			continue
		}
		result.SuccessCount++
		result.TotalAmount += amount
	}

	result.FailedCount = len(result.FailedPayments)
	result.Success = result.SuccessCount > 0

	s.logger.Info("mass payment finished",
		"batch_id", batchID,
		"success_count", result.SuccessCount,
		"failed_count", result.FailedCount,
		"total_amount", result.TotalAmount)

	return result, nil
}

// payEmployee processes a single employee within a mass payment batch. It
// returns a failure reason, or the paid amount on success.
func (s *Service) payEmployee(eid string, paymentDate time.Time) (reason string, amount float64) {
	rec, err := s.repo.SalaryByEid(eid)
	if err != nil {
		if errors.Is(err, ErrSalaryNotFound) {
			return FailureNoSalaryRecord, 0
		}
		return err.Error(), 0
	}

	if rec.NetSalary == nil {
		return FailureNoNetSalary, 0
	}

	if err := s.repo.CreatePaymentForDate(eid, rec.NetSalary, paymentDate); err != nil {
		if errors.Is(err, ErrDuplicatePayment) {
			return FailureDuplicatePayment, 0
		}
		return err.Error(), 0
	}

	return "", *rec.NetSalary
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
