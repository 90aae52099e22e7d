package training

import "time"

type TrainingBudget struct {
	Eid             string   `gorm:"column:eid;primaryKey"`
	BudgetRate      *float64 `gorm:"column:budget_rate"`
	BudgetAmount    *float64 `gorm:"column:budget_amount"`
	RemainingAmount *float64 `gorm:"column:remaining_amount"`
}

func (TrainingBudget) TableName() string {
	return "training_budgets"
}

// TrainingRequest is keyed by employee: one open request per employee.
type TrainingRequest struct {
	Eid              string     `gorm:"column:eid;primaryKey"`
	RequestedAmount  *float64   `gorm:"column:requested_amount"`
	Reason           *string    `gorm:"column:reason"`
	AppliedDate      *time.Time `gorm:"column:applied_date;type:date"`
	Status           *string    `gorm:"column:status"`
	GrantedDate      *time.Time `gorm:"column:granted_date;type:date"`
	ProofDocumentURL *string    `gorm:"column:proof_document_url"`
}

func (TrainingRequest) TableName() string {
	return "training_requests"
}
