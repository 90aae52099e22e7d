package leave

import "time"

type LeaveType struct {
	Lid       string `gorm:"column:lid;primaryKey"`
	LeaveType string `gorm:"column:leave_type;not null"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

type LeaveBalance struct {
	Eid                string `gorm:"column:eid;primaryKey"`
	TotalAnnualLeaves  *int   `gorm:"column:total_annual_leaves"`
	TotalCasualLeaves  *int   `gorm:"column:total_casual_leaves"`
	AnnualLeaveBalance *int   `gorm:"column:annual_leave_balance"`
	CasualLeaveBalance *int   `gorm:"column:casual_leave_balance"`
}

func (LeaveBalance) TableName() string {
	return "leave_balance"
}

// LeaveApplication rows are keyed by a generated lid ("L001", "L002", ...).
// The primary key constraint backs the generator's uniqueness guarantee.
type LeaveApplication struct {
	Lid         string    `gorm:"column:lid;primaryKey"`
	Eid         string    `gorm:"column:eid;not null"`
	FromDate    time.Time `gorm:"column:from_date;type:date"`
	ToDate      time.Time `gorm:"column:to_date;type:date"`
	NoOfDays    int       `gorm:"column:no_of_days"`
	Description *string   `gorm:"column:description"`
	Status      string    `gorm:"column:status;default:Pending"`
	Priority    string    `gorm:"column:priority;default:Medium"`
}

func (LeaveApplication) TableName() string {
	return "leave_applications"
}
