package payroll

const (
	WarningNegativeNet  = "negative_net"
	WarningNoAttendance = "no_attendance"

	JobBulkRun = "payroll_bulk_run"
)
