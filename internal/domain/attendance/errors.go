package attendance

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("employee already checked in today")
	ErrNoCheckIn        = errors.New("no check-in record for today")
)
