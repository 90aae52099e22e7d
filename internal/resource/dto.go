package resource

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type AllocationDTO struct {
	AllocationID  int64  `json:"allocation_id"`
	Eid           string `json:"eid"`
	Rid           string `json:"rid,omitempty"`
	AllocatedDate string `json:"allocated_date"`
	CollectedDate string `json:"collected_date,omitempty"`
	UsedDays      *int   `json:"used_days,omitempty"`
}

func (dto AllocationDTO) Validate() error {
	if dto.Eid == "" {
		return errors.New("eid is required")
	}
	if dto.AllocatedDate == "" {
		return errors.New("allocated_date is required")
	}
	if _, err := time.Parse(dateLayout, dto.AllocatedDate); err != nil {
		return fmt.Errorf("allocated_date is not a valid date: %q", dto.AllocatedDate)
	}
	if dto.CollectedDate != "" {
		if _, err := time.Parse(dateLayout, dto.CollectedDate); err != nil {
			return fmt.Errorf("collected_date is not a valid date: %q", dto.CollectedDate)
		}
	}
	return nil
}

func (dto AllocationDTO) ToAllocation() *Allocation {
	allocated, _ := time.Parse(dateLayout, dto.AllocatedDate)

	a := &Allocation{
		AllocationID:  dto.AllocationID,
		Eid:           dto.Eid,
		AllocatedDate: allocated,
		UsedDays:      dto.UsedDays,
	}
	if dto.Rid != "" {
		rid := dto.Rid
		a.Rid = &rid
	}
	if dto.CollectedDate != "" {
		if d, err := time.Parse(dateLayout, dto.CollectedDate); err == nil {
			a.CollectedDate = &d
		}
	}
	return a
}

func DTOFromAllocation(a *Allocation) *AllocationDTO {
	dto := &AllocationDTO{
		AllocationID:  a.AllocationID,
		Eid:           a.Eid,
		AllocatedDate: a.AllocatedDate.Format(dateLayout),
		UsedDays:      a.UsedDays,
	}
	if a.Rid != nil {
		dto.Rid = *a.Rid
	}
	if a.CollectedDate != nil {
		dto.CollectedDate = a.CollectedDate.Format(dateLayout)
	}
	return dto
}

func DTOsFromAllocations(allocations []*Allocation) []*AllocationDTO {
	result := make([]*AllocationDTO, len(allocations))
	for i, a := range allocations {
		result[i] = DTOFromAllocation(a)
	}
	return result
}
