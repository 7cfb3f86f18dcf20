package repository

import "errors"

var (
	ErrRecordNotFound = errors.New("score record not found")
	ErrCreateFailed   = errors.New("score record create failed")
)
