package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const minHandleLength = 3

func (h *handler) processScoreRequest(c *gin.Context) (processScoreReq, error) {
	var req processScoreReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	if !strings.Contains(req.Email, "@") {
		return req, errInvalidEmail
	}

	handle := req.normalizedHandle()
	if len(handle) < minHandleLength || !strings.Contains(handle, ".") {
		return req, errInvalidHandle
	}

	return req, nil
}
