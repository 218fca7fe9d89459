package handlers

import (
	"net/http"

	"dance_site_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter, answering 400 itself on failure.
func parseIDParam(c *gin.Context, name, entity string) (int64, bool) {
	id, err := utils.StrToPositiveInt64(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+entity+" ID format.", err.Error()))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst interface{}, op string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.LogWarn(err, op+": Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return false
	}
	return true
}

func respondInternal(c *gin.Context, err error, op string) {
	utils.LogError(err, op)
	utils.RespondInternalError(c)
}
