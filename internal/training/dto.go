package training

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ems-project/ems-backend/internal/payroll"
)

const dateLayout = "2006-01-02"

type BudgetDTO struct {
	Eid             string `json:"eid"`
	BudgetRate      string `json:"budget_rate"`
	BudgetAmount    string `json:"budget_amount"`
	RemainingAmount string `json:"remaining_amount"`
}

func (dto BudgetDTO) Validate() error {
	if dto.Eid == "" {
		return errors.New("eid is required")
	}
	fields := map[string]string{
		"budget_rate":      dto.BudgetRate,
		"budget_amount":    dto.BudgetAmount,
		"remaining_amount": dto.RemainingAmount,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%s is not a valid amount: %q", name, value)
		}
	}
	return nil
}

func (dto BudgetDTO) ToBudget() *Budget {
	return &Budget{
		Eid:             dto.Eid,
		BudgetRate:      parseAmount(dto.BudgetRate),
		BudgetAmount:    parseAmount(dto.BudgetAmount),
		RemainingAmount: parseAmount(dto.RemainingAmount),
	}
}

func BudgetDTOFromBudget(b *Budget) *BudgetDTO {
	return &BudgetDTO{
		Eid:             b.Eid,
		BudgetRate:      formatAmountPtr(b.BudgetRate),
		BudgetAmount:    formatAmountPtr(b.BudgetAmount),
		RemainingAmount: formatAmountPtr(b.RemainingAmount),
	}
}

func BudgetDTOsFromBudgets(budgets []*Budget) []*BudgetDTO {
	result := make([]*BudgetDTO, len(budgets))
	for i, b := range budgets {
		result[i] = BudgetDTOFromBudget(b)
	}
	return result
}

// RequestDTO is the wire shape of a training request; ID carries the "tr_"
// prefixed display id.
type RequestDTO struct {
	ID               string `json:"id"`
	Eid              string `json:"eid"`
	RequestedAmount  string `json:"requested_amount"`
	Reason           string `json:"reason"`
	AppliedDate      string `json:"applied_date"`
	Status           string `json:"status"`
	GrantedDate      string `json:"granted_date"`
	ProofDocumentURL string `json:"proof_document_url"`
}

func RequestDTOFromRequest(r *Request) *RequestDTO {
	dto := &RequestDTO{
		ID:  payroll.EncodeTrainingID(r.Eid),
		Eid: r.Eid,
	}
	if r.RequestedAmount != nil {
		dto.RequestedAmount = payroll.FormatAmount(*r.RequestedAmount)
	}
	if r.Reason != nil {
		dto.Reason = *r.Reason
	}
	if r.AppliedDate != nil {
		dto.AppliedDate = r.AppliedDate.Format(dateLayout)
	}
	if r.Status != nil {
		dto.Status = *r.Status
	}
	if r.GrantedDate != nil {
		dto.GrantedDate = r.GrantedDate.Format(dateLayout)
	}
	if r.ProofDocumentURL != nil {
		dto.ProofDocumentURL = *r.ProofDocumentURL
	}
	return dto
}

func RequestDTOsFromRequests(requests []*Request) []*RequestDTO {
	result := make([]*RequestDTO, len(requests))
	for i, r := range requests {
		result[i] = RequestDTOFromRequest(r)
	}
	return result
}

type CreateRequestDTO struct {
	Eid              string `json:"eid"`
	RequestedAmount  string `json:"requested_amount"`
	Reason           string `json:"reason"`
	AppliedDate      string `json:"applied_date"`
	Status           string `json:"status"`
	GrantedDate      string `json:"granted_date"`
	ProofDocumentURL string `json:"proof_document_url"`
}

func (dto CreateRequestDTO) Validate() error {
	if dto.Eid == "" {
		return errors.New("eid is required")
	}
	if dto.RequestedAmount != "" {
		if _, err := strconv.ParseFloat(dto.RequestedAmount, 64); err != nil {
			return fmt.Errorf("requested_amount is not a valid amount: %q", dto.RequestedAmount)
		}
	}
	for name, value := range map[string]string{
		"applied_date": dto.AppliedDate,
		"granted_date": dto.GrantedDate,
	} {
		if value == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, value); err != nil {
			return fmt.Errorf("%s is not a valid date: %q", name, value)
		}
	}
	return nil
}

func (dto CreateRequestDTO) ToRequest() *Request {
	req := &Request{
		Eid:             dto.Eid,
		RequestedAmount: parseAmount(dto.RequestedAmount),
	}
	if dto.Reason != "" {
		reason := dto.Reason
		req.Reason = &reason
	}
	if dto.AppliedDate != "" {
		if d, err := time.Parse(dateLayout, dto.AppliedDate); err == nil {
			req.AppliedDate = &d
		}
	}
	status := dto.Status
	if status == "" {
		status = StatusPending
	}
	req.Status = &status
	if dto.GrantedDate != "" {
		if d, err := time.Parse(dateLayout, dto.GrantedDate); err == nil {
			req.GrantedDate = &d
		}
	}
	if dto.ProofDocumentURL != "" {
		u := dto.ProofDocumentURL
		req.ProofDocumentURL = &u
	}
	return req
}

// UpdateRequestDTO uses pointers so an omitted field keeps its stored value
// while an explicit empty string clears it.
type UpdateRequestDTO struct {
	RequestedAmount  *string `json:"requested_amount"`
	Reason           *string `json:"reason"`
	AppliedDate      *string `json:"applied_date"`
	Status           *string `json:"status"`
	GrantedDate      *string `json:"granted_date"`
	ProofDocumentURL *string `json:"proof_document_url"`
}

func (dto UpdateRequestDTO) Validate() error {
	if dto.RequestedAmount != nil && *dto.RequestedAmount != "" {
		if _, err := strconv.ParseFloat(*dto.RequestedAmount, 64); err != nil {
			return fmt.Errorf("requested_amount is not a valid amount: %q", *dto.RequestedAmount)
		}
	}
	for name, value := range map[string]*string{
		"applied_date": dto.AppliedDate,
		"granted_date": dto.GrantedDate,
	} {
		if value == nil || *value == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, *value); err != nil {
			return fmt.Errorf("%s is not a valid date: %q", name, *value)
		}
	}
	return nil
}

func parseAmount(value string) *float64 {
	if value == "" {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formatAmountPtr(value *float64) string {
	if value == nil {
		return ""
	}
	return payroll.FormatAmount(*value)
}
