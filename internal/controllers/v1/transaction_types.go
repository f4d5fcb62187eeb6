package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yash-sojitra/Hisab/internal/models"
)

type TransactionEditable struct {
	Name            string          `json:"name" binding:"required" example:"Weekly groceries"`                         // Name of the transaction
	Amount          decimal.Decimal `json:"amount" binding:"required" example:"14.03"`                                  // Unsigned amount, the sign follows from the category type
	Date            time.Time       `json:"date" binding:"required" example:"2022-04-02T00:00:00Z"`                     // Date of the transaction
	CategoryID      uuid.UUID       `json:"categoryId" binding:"required" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the category
	ReceiptImageURL string          `json:"receiptImageUrl" example:"https://example.com/receipts/1019.jpg"`            // Optional receipt image reference
}

// model returns the database resource for the API representation of the
// editable fields, owned by the passed user.
func (editable TransactionEditable) model(userID string) models.Transaction {
	return models.Transaction{
		UserID:          userID,
		CategoryID:      editable.CategoryID,
		Name:            editable.Name,
		Amount:          editable.Amount,
		Date:            editable.Date,
		ReceiptImageURL: editable.ReceiptImageURL,
	}
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`  // The transaction with its category
	Error *string             `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []models.Transaction `json:"data"`       // List of transactions
	Error      *string              `json:"error"`      // The error, if any occurred
	Pagination *Pagination          `json:"pagination"` // Page metadata
}

type TransactionQueryFilter struct {
	StartDate  time.Time           `form:"startDate" time_format:"2006-01-02" time_utc:"1"` // Transactions at and after this day
	EndDate    time.Time           `form:"endDate" time_format:"2006-01-02" time_utc:"1"`   // Transactions before and at this day
	Type       models.CategoryType `form:"type"`                                            // Only transactions whose category has this type
	CategoryID string              `form:"categoryId"`                                      // Only transactions of this category. Takes precedence over type
	Page       int                 `form:"page"`                                            // The page to return, starting at 1. Defaults to 1
	Limit      int                 `form:"limit"`                                           // Maximum number of transactions per page. Defaults to 10
}
