package postgres

import (
	"errors"

	trainingDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/training"
	"github.com/ems-project/ems-backend/internal/training"
	"gorm.io/gorm"
)

// TrainingRepository implements training.Repository using GORM.
type TrainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) training.Repository {
	return &TrainingRepository{db: db}
}

func (r *TrainingRepository) AllBudgets() ([]*training.Budget, error) {
	var models []*trainingDatamodel.TrainingBudget
	if err := r.db.Order("eid").Find(&models).Error; err != nil {
		return nil, err
	}

	budgets := make([]*training.Budget, len(models))
	for i, m := range models {
		budgets[i] = training.BudgetFromDataModel(m)
	}
	return budgets, nil
}

func (r *TrainingRepository) BudgetByEid(eid string) (*training.Budget, error) {
	var m trainingDatamodel.TrainingBudget
	err := r.db.Where("eid = ?", eid).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, training.ErrBudgetNotFound
		}
		return nil, err
	}
	return training.BudgetFromDataModel(&m), nil
}

func (r *TrainingRepository) CreateBudget(b *training.Budget) error {
	err := r.db.Create(training.BudgetToDataModel(b)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return training.ErrDuplicateRecord
	}
	return err
}

func (r *TrainingRepository) UpdateBudget(b *training.Budget) error {
	return r.db.Save(training.BudgetToDataModel(b)).Error
}

func (r *TrainingRepository) DeleteBudget(eid string) error {
	return r.db.Where("eid = ?", eid).Delete(&trainingDatamodel.TrainingBudget{}).Error
}

func (r *TrainingRepository) AllRequests() ([]*training.Request, error) {
	var models []*trainingDatamodel.TrainingRequest
	if err := r.db.Order("eid").Find(&models).Error; err != nil {
		return nil, err
	}

	requests := make([]*training.Request, len(models))
	for i, m := range models {
		requests[i] = training.RequestFromDataModel(m)
	}
	return requests, nil
}

func (r *TrainingRepository) RequestByEid(eid string) (*training.Request, error) {
	var m trainingDatamodel.TrainingRequest
	err := r.db.Where("eid = ?", eid).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, training.ErrRequestNotFound
		}
		return nil, err
	}
	return training.RequestFromDataModel(&m), nil
}

func (r *TrainingRepository) CreateRequest(req *training.Request) error {
	err := r.db.Create(training.RequestToDataModel(req)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return training.ErrDuplicateRecord
	}
	return err
}

func (r *TrainingRepository) UpdateRequest(req *training.Request) error {
	return r.db.Model(&trainingDatamodel.TrainingRequest{}).
		Where("eid = ?", req.Eid).
		Updates(map[string]interface{}{
			"requested_amount":   req.RequestedAmount,
			"reason":             req.Reason,
			"applied_date":       req.AppliedDate,
			"status":             req.Status,
			"granted_date":       req.GrantedDate,
			"proof_document_url": req.ProofDocumentURL,
		}).Error
}

func (r *TrainingRepository) DeleteRequest(eid string) error {
	return r.db.Where("eid = ?", eid).Delete(&trainingDatamodel.TrainingRequest{}).Error
}
