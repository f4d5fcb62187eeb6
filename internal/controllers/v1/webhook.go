package v1

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	svix "github.com/svix/svix-webhooks/go"
	"github.com/yash-sojitra/Hisab/internal/httputil"
	"github.com/yash-sojitra/Hisab/internal/models"
)

// userCreated is the only event type that leads to a write. All other
// event types are acknowledged without action.
const userCreated = "user.created"

// WebhookEvent is a user lifecycle event sent by the identity provider.
type WebhookEvent struct {
	Type string           `json:"type"` // Event type, e.g. user.created
	Data WebhookEventUser `json:"data"` // The user the event is about
}

type WebhookEventUser struct {
	ID             string `json:"id"` // ID assigned by the identity provider
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// RegisterWebhookRoutes registers the routes for identity webhooks with
// the RouterGroup that is passed.
//
// Webhook requests are authenticated by their signature, not by a
// bearer token, so this group must not use the identity middleware.
func RegisterWebhookRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsWebhook)
	r.POST("", PostWebhook)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Webhooks
// @Success		204
// @Router			/v1/webhooks [options]
func OptionsWebhook(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Identity sync webhook
// @Description	Receives signed user lifecycle events from the identity provider and mirrors new users
// @Tags			Webhooks
// @Accept			json
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/webhooks [post]
func PostWebhook(c *gin.Context) {
	secret, ok := os.LookupEnv("WEBHOOK_SECRET")
	if !ok {
		s := "webhook secret is not configured"
		log.Error().Str("request-id", requestid.Get(c)).Msg(s)
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidBody.Error()})
		return
	}

	// Signature and timestamp verification is delegated to the signing
	// library. It also rejects requests with missing headers.
	err = wh.Verify(payload, c.Request.Header)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: "webhook verification failed"})
		return
	}

	var event WebhookEvent
	err = json.Unmarshal(payload, &event)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidBody.Error()})
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Str("event", event.Type).Str("user", event.Data.ID).Msg("Webhook")

	if event.Type == userCreated {
		// Replayed events for an already mirrored user must not seed
		// a second category set
		var existing models.User
		err = models.DB.First(&existing, "id = ?", event.Data.ID).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Webhook received successfully"})
			return
		}

		user := models.User{
			ID:        event.Data.ID,
			FirstName: event.Data.FirstName,
			LastName:  event.Data.LastName,
		}

		if len(event.Data.EmailAddresses) > 0 {
			user.Email = event.Data.EmailAddresses[0].EmailAddress
		}

		err = user.CreateWithDefaultCategories(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), httpError{Error: s})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Webhook received successfully"})
}
