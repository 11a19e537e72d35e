package db

import "fmt"

// Common errors
var (
	ErrReportNotFound     = fmt.Errorf("report not found")
	ErrNoReportsFound     = fmt.Errorf("no reports found")
	ErrInvalidInput       = fmt.Errorf("invalid input")
	ErrDatabaseConnection = fmt.Errorf("database connection error")
)
