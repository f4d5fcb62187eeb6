package v1

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yash-sojitra/Hisab/internal/httputil"
	"github.com/yash-sojitra/Hisab/internal/identity"
	"github.com/yash-sojitra/Hisab/internal/models"
	"github.com/yash-sojitra/Hisab/internal/receipt"
)

type ProcessImageRequest struct {
	Image string `json:"image" binding:"required"` // Base64 encoded receipt photo, optionally as data URL
}

type ExtractionResponse struct {
	Data  *receipt.Extraction `json:"data"`  // The extracted receipt fields
	Error *string             `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/process-image [options]
func OptionsProcessImage(c *gin.Context) {
	httputil.OptionsPost(c)
}

// ProcessImage returns the handler that extracts transaction data from
// a receipt photo with the passed extractor.
//
// @Summary		Process receipt image
// @Description	Extracts name, date, category and total from a receipt photo
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExtractionResponse
// @Failure		400		{object}	ExtractionResponse
// @Failure		500		{object}	ExtractionResponse
// @Param			image	body		ProcessImageRequest	true	"Receipt image"
// @Router			/v1/transactions/process-image [post]
func ProcessImage(extractor receipt.Extractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request ProcessImageRequest

		err := httputil.BindData(c, &request)
		if err != nil {
			s := errImageRequired.Error()
			c.JSON(http.StatusBadRequest, ExtractionResponse{Error: &s})
			return
		}

		image, err := base64.StdEncoding.DecodeString(receipt.StripDataURL(request.Image))
		if err != nil {
			s := errImageNotBase64.Error()
			c.JSON(http.StatusBadRequest, ExtractionResponse{Error: &s})
			return
		}

		// The extraction schema is constrained to the user's own
		// category names plus the fallback
		categories, err := models.CategoryNames(models.DB, identity.UserID(c))
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExtractionResponse{Error: &s})
			return
		}

		extraction, err := extractor.Extract(c.Request.Context(), image, categories)
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())

			s := models.ErrGeneral.Error()
			c.JSON(http.StatusInternalServerError, ExtractionResponse{Error: &s})
			return
		}

		c.JSON(http.StatusOK, ExtractionResponse{Data: &extraction})
	}
}
