package postgres

import (
	"errors"

	leaveDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/leave"
	"github.com/ems-project/ems-backend/internal/leave"
	"gorm.io/gorm"
)

// LeaveRepository implements leave.Repository using GORM.
type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.Repository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) AllTypes() ([]*leave.LeaveType, error) {
	var models []*leaveDatamodel.LeaveType
	if err := r.db.Order("lid").Find(&models).Error; err != nil {
		return nil, err
	}

	types := make([]*leave.LeaveType, len(models))
	for i, m := range models {
		types[i] = leave.TypeFromDataModel(m)
	}
	return types, nil
}

func (r *LeaveRepository) TypeByLid(lid string) (*leave.LeaveType, error) {
	var m leaveDatamodel.LeaveType
	err := r.db.Where("lid = ?", lid).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leave.ErrTypeNotFound
		}
		return nil, err
	}
	return leave.TypeFromDataModel(&m), nil
}

func (r *LeaveRepository) CreateType(t *leave.LeaveType) error {
	err := r.db.Create(leave.TypeToDataModel(t)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return leave.ErrDuplicateRecord
	}
	return err
}

func (r *LeaveRepository) UpdateType(t *leave.LeaveType) error {
	return r.db.Save(leave.TypeToDataModel(t)).Error
}

func (r *LeaveRepository) DeleteType(lid string) error {
	return r.db.Where("lid = ?", lid).Delete(&leaveDatamodel.LeaveType{}).Error
}

func (r *LeaveRepository) AllBalances() ([]*leave.Balance, error) {
	var models []*leaveDatamodel.LeaveBalance
	if err := r.db.Order("eid").Find(&models).Error; err != nil {
		return nil, err
	}

	balances := make([]*leave.Balance, len(models))
	for i, m := range models {
		balances[i] = leave.BalanceFromDataModel(m)
	}
	return balances, nil
}

func (r *LeaveRepository) BalanceByEid(eid string) (*leave.Balance, error) {
	var m leaveDatamodel.LeaveBalance
	err := r.db.Where("eid = ?", eid).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leave.ErrBalanceNotFound
		}
		return nil, err
	}
	return leave.BalanceFromDataModel(&m), nil
}

func (r *LeaveRepository) CreateBalance(b *leave.Balance) error {
	err := r.db.Create(leave.BalanceToDataModel(b)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return leave.ErrDuplicateRecord
	}
	return err
}

func (r *LeaveRepository) UpdateBalance(b *leave.Balance) error {
	return r.db.Save(leave.BalanceToDataModel(b)).Error
}

func (r *LeaveRepository) DeleteBalance(eid string) error {
	return r.db.Where("eid = ?", eid).Delete(&leaveDatamodel.LeaveBalance{}).Error
}

func (r *LeaveRepository) AllApplications() ([]*leave.Application, error) {
	var models []*leaveDatamodel.LeaveApplication
	if err := r.db.Order("lid").Find(&models).Error; err != nil {
		return nil, err
	}
	return leave.ApplicationsFromDataModel(models), nil
}

func (r *LeaveRepository) ApplicationsByEid(eid string) ([]*leave.Application, error) {
	var models []*leaveDatamodel.LeaveApplication
	err := r.db.Where("eid = ?", eid).
		Order("from_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return leave.ApplicationsFromDataModel(models), nil
}

func (r *LeaveRepository) ApplicationByLid(lid string) (*leave.Application, error) {
	var m leaveDatamodel.LeaveApplication
	err := r.db.Where("lid = ?", lid).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leave.ErrApplicationNotFound
		}
		return nil, err
	}
	return leave.ApplicationFromDataModel(&m), nil
}

func (r *LeaveRepository) CreateApplication(a *leave.Application) error {
	err := r.db.Create(leave.ApplicationToDataModel(a)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return leave.ErrDuplicateRecord
	}
	return err
}

func (r *LeaveRepository) UpdateApplication(a *leave.Application) error {
	return r.db.Model(&leaveDatamodel.LeaveApplication{}).
		Where("lid = ?", a.Lid).
		Updates(map[string]interface{}{
			"eid":         a.Eid,
			"from_date":   a.FromDate,
			"to_date":     a.ToDate,
			"no_of_days":  a.NoOfDays,
			"description": a.Description,
			"status":      a.Status,
			"priority":    a.Priority,
		}).Error
}

func (r *LeaveRepository) DeleteApplication(lid string) error {
	return r.db.Where("lid = ?", lid).Delete(&leaveDatamodel.LeaveApplication{}).Error
}

func (r *LeaveRepository) CountApplications() (int64, error) {
	var count int64
	err := r.db.Model(&leaveDatamodel.LeaveApplication{}).Count(&count).Error
	return count, err
}

func (r *LeaveRepository) ApplicationExists(lid string) (bool, error) {
	var count int64
	err := r.db.Model(&leaveDatamodel.LeaveApplication{}).
		Where("lid = ?", lid).
		Count(&count).Error
	return count > 0, err
}
