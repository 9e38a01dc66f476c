package dataset

import "errors"

// Shape and directive violations reported by dataset operations.
var (
	ErrNoHeader        = errors.New("dataset has no header row")
	ErrEmptyColumnName = errors.New("column name is empty")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrColumnMismatch  = errors.New("row length does not match column count")
	ErrUnknownColumn   = errors.New("directive references unknown column")
)
