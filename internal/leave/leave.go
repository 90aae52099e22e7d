package leave

import (
	"errors"
	"time"

	leaveDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/leave"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

type LeaveType struct {
	Lid       string `json:"lid"`
	LeaveType string `json:"leave_type"`
}

type Balance struct {
	Eid                string `json:"eid"`
	TotalAnnualLeaves  *int   `json:"total_annual_leaves"`
	TotalCasualLeaves  *int   `json:"total_casual_leaves"`
	AnnualLeaveBalance *int   `json:"annual_leave_balance"`
	CasualLeaveBalance *int   `json:"casual_leave_balance"`
}

// Application is a leave application keyed by a generated lid.
type Application struct {
	Lid         string
	Eid         string
	FromDate    time.Time
	ToDate      time.Time
	NoOfDays    int
	Description *string
	Status      string
	Priority    string
}

var (
	ErrTypeNotFound        = errors.New("leave type not found")
	ErrBalanceNotFound     = errors.New("leave balance not found")
	ErrApplicationNotFound = errors.New("leave application not found")
	ErrDuplicateRecord     = errors.New("record already exists")
)

// Repository defines data access for leave types, balances and applications.
type Repository interface {
	AllTypes() ([]*LeaveType, error)
	TypeByLid(lid string) (*LeaveType, error)
	CreateType(t *LeaveType) error
	UpdateType(t *LeaveType) error
	DeleteType(lid string) error

	AllBalances() ([]*Balance, error)
	BalanceByEid(eid string) (*Balance, error)
	CreateBalance(b *Balance) error
	UpdateBalance(b *Balance) error
	DeleteBalance(eid string) error

	AllApplications() ([]*Application, error)
	ApplicationsByEid(eid string) ([]*Application, error)
	ApplicationByLid(lid string) (*Application, error)
	CreateApplication(a *Application) error
	UpdateApplication(a *Application) error
	DeleteApplication(lid string) error

	CountApplications() (int64, error)
	ApplicationExists(lid string) (bool, error)
}

func TypeToDataModel(t *LeaveType) *leaveDatamodel.LeaveType {
	return &leaveDatamodel.LeaveType{Lid: t.Lid, LeaveType: t.LeaveType}
}

func TypeFromDataModel(m *leaveDatamodel.LeaveType) *LeaveType {
	return &LeaveType{Lid: m.Lid, LeaveType: m.LeaveType}
}

func BalanceToDataModel(b *Balance) *leaveDatamodel.LeaveBalance {
	return &leaveDatamodel.LeaveBalance{
		Eid:                b.Eid,
		TotalAnnualLeaves:  b.TotalAnnualLeaves,
		TotalCasualLeaves:  b.TotalCasualLeaves,
		AnnualLeaveBalance: b.AnnualLeaveBalance,
		CasualLeaveBalance: b.CasualLeaveBalance,
	}
}

func BalanceFromDataModel(m *leaveDatamodel.LeaveBalance) *Balance {
	return &Balance{
		Eid:                m.Eid,
		TotalAnnualLeaves:  m.TotalAnnualLeaves,
		TotalCasualLeaves:  m.TotalCasualLeaves,
		AnnualLeaveBalance: m.AnnualLeaveBalance,
		CasualLeaveBalance: m.CasualLeaveBalance,
	}
}

func ApplicationToDataModel(a *Application) *leaveDatamodel.LeaveApplication {
	return &leaveDatamodel.LeaveApplication{
		Lid:         a.Lid,
		Eid:         a.Eid,
		FromDate:    a.FromDate,
		ToDate:      a.ToDate,
		NoOfDays:    a.NoOfDays,
		Description: a.Description,
		Status:      a.Status,
		Priority:    a.Priority,
	}
}

func ApplicationFromDataModel(m *leaveDatamodel.LeaveApplication) *Application {
	return &Application{
		Lid:         m.Lid,
		Eid:         m.Eid,
		FromDate:    m.FromDate,
		ToDate:      m.ToDate,
		NoOfDays:    m.NoOfDays,
		Description: m.Description,
		Status:      m.Status,
		Priority:    m.Priority,
	}
}

func ApplicationsFromDataModel(ms []*leaveDatamodel.LeaveApplication) []*Application {
	result := make([]*Application, len(ms))
	for i, m := range ms {
		result[i] = ApplicationFromDataModel(m)
	}
	return result
}
