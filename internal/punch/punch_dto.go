package punch

type PreviewEmailRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required,uuid"`
	Dates      []string `json:"dates" binding:"required,min=1,dive,datetime=2006-01-02"`
}

type PreviewEmailResponse struct {
	To       string `json:"to"`
	Cc       string `json:"cc"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	BodyHTML string `json:"body_html"`
}
