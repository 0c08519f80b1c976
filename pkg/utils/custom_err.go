package utils

import "errors"

var (
	ErrRundownNotFound     = errors.New("rundown not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrInvalidRundown      = errors.New("invalid rundown")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrDatabaseError       = errors.New("database error")
)
