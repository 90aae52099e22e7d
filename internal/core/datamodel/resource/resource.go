package resource

import "time"

type ResourceAllocation struct {
	AllocationID  int64      `gorm:"column:allocation_id;primaryKey"`
	Eid           string     `gorm:"column:eid;not null"`
	Rid           *string    `gorm:"column:rid"`
	AllocatedDate time.Time  `gorm:"column:allocated_date;type:date"`
	CollectedDate *time.Time `gorm:"column:collected_date;type:date"`
	UsedDays      *int       `gorm:"column:used_days"`
}

func (ResourceAllocation) TableName() string {
	return "resource_allocations"
}
