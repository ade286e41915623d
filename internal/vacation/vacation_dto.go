package vacation

type CreateVacationRequest struct {
	EmployeeID             string `json:"employee_id" binding:"required,uuid"`
	PlannedMonth           int    `json:"planned_month" binding:"required,min=1,max=12"`
	PlannedYear            int    `json:"planned_year" binding:"required,min=2000,max=2100"`
	SellDays               string `json:"sell_days" binding:"required,oneof=none first10 last10"`
	NotificationDaysBefore int    `json:"notification_days_before" binding:"min=0,max=365"`
}

type UpdateVacationRequest struct {
	EmployeeID             string `json:"employee_id" binding:"required,uuid"`
	PlannedMonth           int    `json:"planned_month" binding:"required,min=1,max=12"`
	PlannedYear            int    `json:"planned_year" binding:"required,min=2000,max=2100"`
	SellDays               string `json:"sell_days" binding:"required,oneof=none first10 last10"`
	NotificationDaysBefore int    `json:"notification_days_before" binding:"min=0,max=365"`
}

// UpdateVacationStatusRequest completes or reopens a plan. in_progress is
// derived from the calendar, never stored through this endpoint.
type UpdateVacationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed"`
}

type VacationResponse struct {
	ID                     string `json:"id"`
	EmployeeID             string `json:"employee_id"`
	EmployeeName           string `json:"employee_name"`
	PlannedMonth           int    `json:"planned_month"`
	PlannedYear            int    `json:"planned_year"`
	SellDays               string `json:"sell_days"`
	NotificationDaysBefore int    `json:"notification_days_before"`
	Status                 string `json:"status"`
	EffectiveStatus        string `json:"effective_status"`
}

// ReminderResponse is one upcoming-vacation notice produced by the
// reminder check. DaysUntilStart counts to the first day of the
// planned month.
type ReminderResponse struct {
	VacationID     string `json:"vacation_id"`
	EmployeeName   string `json:"employee_name"`
	PlannedMonth   int    `json:"planned_month"`
	PlannedYear    int    `json:"planned_year"`
	DaysUntilStart int    `json:"days_until_start"`
	Message        string `json:"message"`
}
