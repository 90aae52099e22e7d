package training

import (
	"errors"
	"time"

	trainingDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/training"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Budget struct {
	Eid             string
	BudgetRate      *float64
	BudgetAmount    *float64
	RemainingAmount *float64
}

// Request is a training funding request. Requests are keyed by employee: each
// employee has at most one open request at a time.
type Request struct {
	Eid              string
	RequestedAmount  *float64
	Reason           *string
	AppliedDate      *time.Time
	Status           *string
	GrantedDate      *time.Time
	ProofDocumentURL *string
}

var (
	ErrBudgetNotFound  = errors.New("training budget not found")
	ErrRequestNotFound = errors.New("training request not found")
	ErrDuplicateRecord = errors.New("record already exists")
)

// Repository defines data access for training budgets and requests.
type Repository interface {
	AllBudgets() ([]*Budget, error)
	BudgetByEid(eid string) (*Budget, error)
	CreateBudget(b *Budget) error
	UpdateBudget(b *Budget) error
	DeleteBudget(eid string) error

	AllRequests() ([]*Request, error)
	RequestByEid(eid string) (*Request, error)
	CreateRequest(req *Request) error
	UpdateRequest(req *Request) error
	DeleteRequest(eid string) error
}

func BudgetToDataModel(b *Budget) *trainingDatamodel.TrainingBudget {
	return &trainingDatamodel.TrainingBudget{
		Eid:             b.Eid,
		BudgetRate:      b.BudgetRate,
		BudgetAmount:    b.BudgetAmount,
		RemainingAmount: b.RemainingAmount,
	}
}

func BudgetFromDataModel(m *trainingDatamodel.TrainingBudget) *Budget {
	return &Budget{
		Eid:             m.Eid,
		BudgetRate:      m.BudgetRate,
		BudgetAmount:    m.BudgetAmount,
		RemainingAmount: m.RemainingAmount,
	}
}

func RequestToDataModel(r *Request) *trainingDatamodel.TrainingRequest {
	return &trainingDatamodel.TrainingRequest{
		Eid:              r.Eid,
		RequestedAmount:  r.RequestedAmount,
		Reason:           r.Reason,
		AppliedDate:      r.AppliedDate,
		Status:           r.Status,
		GrantedDate:      r.GrantedDate,
		ProofDocumentURL: r.ProofDocumentURL,
	}
}

func RequestFromDataModel(m *trainingDatamodel.TrainingRequest) *Request {
	return &Request{
		Eid:              m.Eid,
		RequestedAmount:  m.RequestedAmount,
		Reason:           m.Reason,
		AppliedDate:      m.AppliedDate,
		Status:           m.Status,
		GrantedDate:      m.GrantedDate,
		ProofDocumentURL: m.ProofDocumentURL,
	}
}
