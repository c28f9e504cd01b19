package component

import "errors"

var (
	ErrNotFound      = errors.New("salary component not found")
	ErrDuplicateName = errors.New("salary component name already exists")
	ErrInUse         = errors.New("salary component is referenced by a salary profile")
)
