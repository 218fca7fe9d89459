package middleware

import (
	"fmt"
	"runtime/debug"

	"dance_site_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic into the standard 500 error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("error", fmt.Sprint(rec)).
					Str("stack", string(debug.Stack())).
					Str("path", c.Request.URL.Path).
					Str("trace_id", utils.TraceID(c)).
					Msg("panic recovered")
				utils.RespondInternalError(c)
			}
		}()

		c.Next()
	}
}
