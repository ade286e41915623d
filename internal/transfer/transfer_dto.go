package transfer

import "sicservitium/internal/employee"

// ImportResultResponse summarizes a reconciliation pass over an uploaded
// spreadsheet. Errors keeps the discovery order: validation and in-file
// duplicate messages first, then persistence failures.
type ImportResultResponse struct {
	Inserted  int                         `json:"inserted"`
	Updated   int                         `json:"updated"`
	Errors    []string                    `json:"errors"`
	Employees []employee.EmployeeResponse `json:"employees"`
}
