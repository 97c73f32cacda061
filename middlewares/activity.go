package middlewares

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"foodchef/pkg/logging"
)

// ActivityLog records every authenticated admin request for the audit trail.
func ActivityLog(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		actor := strconv.FormatUint(uint64(UserID(c)), 10) + ":" + Role(c)
		logging.Activity(l, actor, c.ClientIP(), c.Request.Method+" "+c.FullPath(), logrus.Fields{
			"status": c.Writer.Status(),
		})
	}
}
