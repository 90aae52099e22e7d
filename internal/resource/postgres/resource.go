package postgres

import (
	"errors"

	resourceDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/resource"
	"github.com/ems-project/ems-backend/internal/resource"
	"gorm.io/gorm"
)

// ResourceRepository implements resource.Repository using GORM.
type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) resource.Repository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) AllAllocations() ([]*resource.Allocation, error) {
	var models []*resourceDatamodel.ResourceAllocation
	if err := r.db.Order("allocation_id").Find(&models).Error; err != nil {
		return nil, err
	}
	return resource.FromDataModelSlice(models), nil
}

func (r *ResourceRepository) AllocationsByEid(eid string) ([]*resource.Allocation, error) {
	var models []*resourceDatamodel.ResourceAllocation
	err := r.db.Where("eid = ?", eid).
		Order("allocated_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return resource.FromDataModelSlice(models), nil
}

func (r *ResourceRepository) AllocationByID(id int64) (*resource.Allocation, error) {
	var m resourceDatamodel.ResourceAllocation
	err := r.db.Where("allocation_id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, resource.ErrAllocationNotFound
		}
		return nil, err
	}
	return resource.FromDataModel(&m), nil
}

func (r *ResourceRepository) CreateAllocation(a *resource.Allocation) error {
	m := resource.ToDataModel(a)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	a.AllocationID = m.AllocationID
	return nil
}

func (r *ResourceRepository) UpdateAllocation(a *resource.Allocation) error {
	return r.db.Model(&resourceDatamodel.ResourceAllocation{}).
		Where("allocation_id = ?", a.AllocationID).
		Updates(map[string]interface{}{
			"eid":            a.Eid,
			"rid":            a.Rid,
			"allocated_date": a.AllocatedDate,
			"collected_date": a.CollectedDate,
			"used_days":      a.UsedDays,
		}).Error
}

func (r *ResourceRepository) DeleteAllocation(id int64) error {
	return r.db.Where("allocation_id = ?", id).Delete(&resourceDatamodel.ResourceAllocation{}).Error
}
