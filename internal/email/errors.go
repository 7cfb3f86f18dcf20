package email

import "errors"

var (
	ErrRenderFailed = errors.New("score report rendering failed")
	ErrSendFailed   = errors.New("score report delivery failed")
)
