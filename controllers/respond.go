package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"go.uber.org/zap"
)

// respondError maps any error onto the structured wire shape. Storage-layer
// failures are logged with the request path; client failures are not noise
// worth logging.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	switch appErr.Kind {
	case apperrors.KindInternal, apperrors.KindUnavailable:
		zap.L().Error("Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("kind", string(appErr.Kind)),
			zap.Error(appErr),
		)
	}
	c.JSON(appErr.Code, gin.H{"kind": appErr.Kind, "message": appErr.Message})
}
