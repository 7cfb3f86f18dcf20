package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyscore-srv/pkg/discord"
	pkgErrors "skyscore-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code;
// anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		if httpErr.Code >= http.StatusInternalServerError {
			notifyError(c, notifier, err)
		}
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
	notifyError(c, notifier, err)
}

// ErrorWithMap resolves err against the mapping before writing the response.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, notifier discord.IDiscord) {
	for domainErr, httpErr := range mapping {
		if errors.Is(err, domainErr) {
			Error(c, httpErr, notifier)
			return
		}
	}
	Error(c, err, notifier)
}

// PanicError writes a 500 for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
	if notifier != nil {
		_ = notifier.SendError(context.Background(), "Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}
}

func notifyError(c *gin.Context, notifier discord.IDiscord, err error) {
	if notifier == nil {
		return
	}
	_ = notifier.SendError(context.Background(), "Request failed",
		fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
}
