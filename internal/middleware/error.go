package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "dailybudget/internal/errors"
	"dailybudget/internal/logger"
)

// WriteError renders err as {"error":{"code","message"}}. AppErrors keep
// their status and message; anything else becomes INTERNAL_ERROR and only
// the log sees the cause.
func WriteError(c *gin.Context, err error) {
	log := logger.Named("http").With(
		"request_id", RequestID(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	if uid := c.GetString(ContextUserID); uid != "" {
		log = log.With("user_id", uid)
	}

	appErr := apperrors.ErrInternalServer
	var target *apperrors.AppError
	if errors.As(err, &target) {
		appErr = target
		if appErr.Internal != nil {
			log.Errorw("request failed", "code", appErr.Code, "internal", appErr.Internal.Error())
		}
	} else {
		log.Errorw("unexpected error", "error", err.Error())
	}

	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// ErrorHandler renders the last error a handler attached with c.Error,
// unless the handler already wrote a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		WriteError(c, c.Errors.Last().Err)
	}
}
