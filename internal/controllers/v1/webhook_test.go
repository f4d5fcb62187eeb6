package v1_test

import (
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	svix "github.com/svix/svix-webhooks/go"
	"github.com/yash-sojitra/Hisab/internal/models"
	"github.com/yash-sojitra/Hisab/test"
)

// signedHeaders signs the payload the way the identity provider would.
func signedHeaders(t *testing.T, payload string) map[string]string {
	wh, err := svix.NewWebhook(os.Getenv("WEBHOOK_SECRET"))
	require.NoError(t, err)

	id := "msg_" + uuid.NewString()
	timestamp := time.Now()

	signature, err := wh.Sign(id, timestamp, []byte(payload))
	require.NoError(t, err)

	return map[string]string{
		"svix-id":        id,
		"svix-timestamp": strconv.FormatInt(timestamp.Unix(), 10),
		"svix-signature": signature,
	}
}

const userCreatedPayload = `{
	"type": "user.created",
	"data": {
		"id": "user_2y4K7wWdbqGxTYvPmXCvansAT9z",
		"first_name": "Jane",
		"last_name": "Doe",
		"email_addresses": [
			{ "email_address": "jane@example.com" },
			{ "email_address": "jane.doe@example.org" }
		]
	}
}`

func (suite *TestSuiteStandard) TestWebhookOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/webhooks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

// TestWebhookUserCreated verifies that a signed user.created event
// mirrors the user with their default category set.
func (suite *TestSuiteStandard) TestWebhookUserCreated() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/webhooks", userCreatedPayload, signedHeaders(suite.T(), userCreatedPayload))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{ "message": "Webhook received successfully" }`, r.Body.String())

	var user models.User
	require.NoError(suite.T(), models.DB.First(&user, "id = ?", "user_2y4K7wWdbqGxTYvPmXCvansAT9z").Error)

	assert.Equal(suite.T(), "Jane", user.FirstName)
	assert.Equal(suite.T(), "Doe", user.LastName)

	// The first email address wins
	assert.Equal(suite.T(), "jane@example.com", user.Email)

	names, err := models.CategoryNames(models.DB, user.ID)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), names, 10)
	assert.Contains(suite.T(), names, "Other")
	assert.Contains(suite.T(), names, "Groceries")
	assert.Contains(suite.T(), names, "Salary")
}

// TestWebhookReplay verifies that a redelivered user.created event does
// not seed a second category set.
func (suite *TestSuiteStandard) TestWebhookReplay() {
	for i := 0; i < 2; i++ {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/webhooks", userCreatedPayload, signedHeaders(suite.T(), userCreatedPayload))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	var users int64
	require.NoError(suite.T(), models.DB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(suite.T(), int64(1), users)

	names, err := models.CategoryNames(models.DB, "user_2y4K7wWdbqGxTYvPmXCvansAT9z")
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), names, 10)
}

// TestWebhookOtherEvents verifies that events other than user.created are
// acknowledged without creating anything.
func (suite *TestSuiteStandard) TestWebhookOtherEvents() {
	payload := `{ "type": "user.updated", "data": { "id": "user_updated_only" } }`

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/webhooks", payload, signedHeaders(suite.T(), payload))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var users int64
	require.NoError(suite.T(), models.DB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(suite.T(), int64(0), users)
}

func (suite *TestSuiteStandard) TestWebhookInvalidSignature() {
	tests := []struct {
		name    string            // Name for the test
		headers map[string]string // The request headers
	}{
		{"No headers", map[string]string{}},
		{"Tampered payload", signedHeaders(suite.T(), `{ "type": "user.created", "data": { "id": "user_evil" } }`)},
		{"Garbage signature", map[string]string{
			"svix-id":        "msg_garbage",
			"svix-timestamp": strconv.FormatInt(time.Now().Unix(), 10),
			"svix-signature": "v1,ZmFrZXNpZ25hdHVyZQ==",
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/webhooks", userCreatedPayload, tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	var users int64
	require.NoError(suite.T(), models.DB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(suite.T(), int64(0), users)
}

// TestWebhookSecretMissing verifies that the webhook fails closed when
// the secret is not configured.
func (suite *TestSuiteStandard) TestWebhookSecretMissing() {
	secret := os.Getenv("WEBHOOK_SECRET")
	os.Unsetenv("WEBHOOK_SECRET")
	defer os.Setenv("WEBHOOK_SECRET", secret)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/webhooks", userCreatedPayload)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
