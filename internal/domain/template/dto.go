package template

import "github.com/albapay/albapay-backend-go/internal/pkg/validator"

type CreateTemplateRequest struct {
	StoreID      string       `json:"-"`
	Name         string       `json:"name"`
	ScheduleData ScheduleData `json:"schedule_data"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	errs = append(errs, validateScheduleData(r.ScheduleData)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTemplateRequest struct {
	ID           string
	Name         *string       `json:"name,omitempty"`
	ScheduleData *ScheduleData `json:"schedule_data,omitempty"`
}

func (r *UpdateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ScheduleData != nil {
		errs = append(errs, validateScheduleData(*r.ScheduleData)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateScheduleData(data ScheduleData) validator.ValidationErrors {
	var errs validator.ValidationErrors

	for key, day := range data {
		if !validator.IsInSlice(key, WeekdayKeys) {
			errs = append(errs, validator.ValidationError{Field: "schedule_data." + key, Message: "is not a weekday"})
			continue
		}
		for empID, shift := range day.Employees {
			if !validator.IsValidClockTime(shift.StartTime) || !validator.IsValidClockTime(shift.EndTime) {
				errs = append(errs, validator.ValidationError{
					Field:   "schedule_data." + key + "." + empID,
					Message: "shift times must be HH:mm",
				})
			}
			for _, b := range shift.BreakPeriods {
				if !validator.IsValidClockTime(b.Start) || !validator.IsValidClockTime(b.End) {
					errs = append(errs, validator.ValidationError{
						Field:   "schedule_data." + key + "." + empID,
						Message: "break times must be HH:mm",
					})
				}
			}
		}
	}

	return errs
}

type TemplateResponse struct {
	ID           string       `json:"id"`
	StoreID      string       `json:"store_id"`
	Name         string       `json:"name"`
	ScheduleData ScheduleData `json:"schedule_data"`
}
