package resource

import (
	"errors"
	"time"

	resourceDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/resource"
)

// Allocation records a physical resource handed to an employee.
type Allocation struct {
	AllocationID  int64
	Eid           string
	Rid           *string
	AllocatedDate time.Time
	CollectedDate *time.Time
	UsedDays      *int
}

var (
	ErrAllocationNotFound = errors.New("resource allocation not found")
)

// Repository defines data access for resource allocations.
type Repository interface {
	AllAllocations() ([]*Allocation, error)
	AllocationsByEid(eid string) ([]*Allocation, error)
	AllocationByID(id int64) (*Allocation, error)
	CreateAllocation(a *Allocation) error
	UpdateAllocation(a *Allocation) error
	DeleteAllocation(id int64) error
}

func ToDataModel(a *Allocation) *resourceDatamodel.ResourceAllocation {
	return &resourceDatamodel.ResourceAllocation{
		AllocationID:  a.AllocationID,
		Eid:           a.Eid,
		Rid:           a.Rid,
		AllocatedDate: a.AllocatedDate,
		CollectedDate: a.CollectedDate,
		UsedDays:      a.UsedDays,
	}
}

func FromDataModel(m *resourceDatamodel.ResourceAllocation) *Allocation {
	return &Allocation{
		AllocationID:  m.AllocationID,
		Eid:           m.Eid,
		Rid:           m.Rid,
		AllocatedDate: m.AllocatedDate,
		CollectedDate: m.CollectedDate,
		UsedDays:      m.UsedDays,
	}
}

func FromDataModelSlice(ms []*resourceDatamodel.ResourceAllocation) []*Allocation {
	result := make([]*Allocation, len(ms))
	for i, m := range ms {
		result[i] = FromDataModel(m)
	}
	return result
}
