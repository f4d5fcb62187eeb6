package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yash-sojitra/Hisab/internal/httputil"
	"github.com/yash-sojitra/Hisab/internal/identity"
	"github.com/yash-sojitra/Hisab/internal/models"
)

type SummaryResponse struct {
	Data  *models.MonthSummary `json:"data"`  // The dashboard summary for the current month
	Error *string              `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Dashboard summary
// @Description	Returns income and expense totals and per-category breakdowns for the current month
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/v1/transactions/summary [get]
func GetSummary(c *gin.Context) {
	summary, err := models.MonthlySummary(c.Request.Context(), models.DB, identity.UserID(c), time.Now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
