package leave

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type ApplicationDTO struct {
	Lid         string `json:"lid"`
	Eid         string `json:"eid"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	NoOfDays    int    `json:"no_of_days"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

func (dto ApplicationDTO) Validate() error {
	if dto.Eid == "" {
		return errors.New("eid is required")
	}
	if dto.FromDate == "" || dto.ToDate == "" {
		return errors.New("from_date and to_date are required")
	}
	from, err := time.Parse(dateLayout, dto.FromDate)
	if err != nil {
		return fmt.Errorf("from_date is not a valid date: %q", dto.FromDate)
	}
	to, err := time.Parse(dateLayout, dto.ToDate)
	if err != nil {
		return fmt.Errorf("to_date is not a valid date: %q", dto.ToDate)
	}
	if to.Before(from) {
		return errors.New("to_date cannot be before from_date")
	}
	if dto.NoOfDays <= 0 {
		return errors.New("no_of_days must be greater than 0")
	}
	return nil
}

func (dto ApplicationDTO) ToApplication() *Application {
	from, _ := time.Parse(dateLayout, dto.FromDate)
	to, _ := time.Parse(dateLayout, dto.ToDate)

	a := &Application{
		Lid:      dto.Lid,
		Eid:      dto.Eid,
		FromDate: from,
		ToDate:   to,
		NoOfDays: dto.NoOfDays,
		Status:   dto.Status,
		Priority: dto.Priority,
	}
	if dto.Description != "" {
		desc := dto.Description
		a.Description = &desc
	}
	return a
}

func ApplicationDTOFromApplication(a *Application) *ApplicationDTO {
	dto := &ApplicationDTO{
		Lid:      a.Lid,
		Eid:      a.Eid,
		FromDate: a.FromDate.Format(dateLayout),
		ToDate:   a.ToDate.Format(dateLayout),
		NoOfDays: a.NoOfDays,
		Status:   a.Status,
		Priority: a.Priority,
	}
	if a.Description != nil {
		dto.Description = *a.Description
	}
	return dto
}

func ApplicationDTOsFromApplications(apps []*Application) []*ApplicationDTO {
	result := make([]*ApplicationDTO, len(apps))
	for i, a := range apps {
		result[i] = ApplicationDTOFromApplication(a)
	}
	return result
}

type LeaveTypeDTO struct {
	Lid       string `json:"lid"`
	LeaveType string `json:"leave_type"`
}

func (dto LeaveTypeDTO) Validate() error {
	if dto.Lid == "" {
		return errors.New("lid is required")
	}
	if dto.LeaveType == "" {
		return errors.New("leave_type is required")
	}
	return nil
}

type BalanceDTO struct {
	Eid                string `json:"eid"`
	TotalAnnualLeaves  *int   `json:"total_annual_leaves"`
	TotalCasualLeaves  *int   `json:"total_casual_leaves"`
	AnnualLeaveBalance *int   `json:"annual_leave_balance"`
	CasualLeaveBalance *int   `json:"casual_leave_balance"`
}

func (dto BalanceDTO) Validate() error {
	if dto.Eid == "" {
		return errors.New("eid is required")
	}
	return nil
}
