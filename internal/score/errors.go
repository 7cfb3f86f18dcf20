package score

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCardRenderFailed = errors.New("score card rendering failed")
	ErrCardUploadFailed = errors.New("score card upload failed")
	ErrScoreSaveFailed  = errors.New("score persistence failed")
)
