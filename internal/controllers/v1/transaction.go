package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yash-sojitra/Hisab/internal/httputil"
	"github.com/yash-sojitra/Hisab/internal/identity"
	"github.com/yash-sojitra/Hisab/internal/models"
	"github.com/yash-sojitra/Hisab/internal/receipt"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup, extractor receipt.Extractor) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	r.OPTIONS("/summary", OptionsSummary)
	r.GET("/summary", GetSummary)

	r.OPTIONS("/process-image", OptionsProcessImage)
	r.POST("/process-image", ProcessImage(extractor))

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.PUT("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Transaction{}, "id = ? AND user_id = ?", id, identity.UserID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPutDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction owned by the authenticated user
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	transaction := editable.model(identity.UserID(c))

	err = models.DB.Create(&transaction).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	// Reload with the category joined for the response
	err = models.DB.Preload("Category").First(&transaction, transaction.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Get transactions
// @Description	Returns a page of the authenticated user's transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			startDate	query	string	false	"Transactions at and after this day, e.g. 2022-04-01"
// @Param			endDate		query	string	false	"Transactions before and at this day. The whole day is included."
// @Param			type		query	string	false	"Only transactions whose category has this type"
// @Param			categoryId	query	string	false	"Only transactions of this category. Takes precedence over type"
// @Param			page		query	int		false	"The page to return, starting at 1. Defaults to 1."
// @Param			limit		query	int		false	"Maximum number of transactions per page. Defaults to 10."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	// The base query is built fresh for every use since a single gorm
	// statement must not be shared between goroutines
	query := func() (*gorm.DB, error) {
		q := models.DB.
			Model(&models.Transaction{}).
			Where("transactions.user_id = ?", identity.UserID(c))

		if !filter.StartDate.IsZero() {
			q = q.Where("datetime(transactions.date) >= datetime(?)", filter.StartDate)
		}

		if !filter.EndDate.IsZero() {
			// The end date is inclusive through the whole day
			end := time.Date(filter.EndDate.Year(), filter.EndDate.Month(), filter.EndDate.Day(), 23, 59, 59, 999000000, time.UTC)
			q = q.Where("datetime(transactions.date) <= datetime(?)", end)
		}

		// A specific category takes precedence over the type filter
		if filter.CategoryID != "" {
			id, err := uuid.Parse(filter.CategoryID)
			if err != nil {
				return nil, httputil.ErrInvalidUUID
			}

			q = q.Where("transactions.category_id = ?", id)
		} else if filter.Type != "" {
			if !slices.Contains([]models.CategoryType{models.CategoryTypeIncome, models.CategoryTypeExpense}, filter.Type) {
				return nil, errCategoryTypeInvalid
			}

			q = q.
				Joins("JOIN categories ON categories.id = transactions.category_id").
				Where("categories.type = ?", filter.Type)
		}

		return q, nil
	}

	// Page and total count are fetched concurrently. There is no
	// consistency snapshot across the two reads, which is acceptable
	// for this use case.
	var transactions []models.Transaction
	var count int64

	var g errgroup.Group

	g.Go(func() error {
		q, err := query()
		if err != nil {
			return err
		}

		return q.
			Preload("Category").
			Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&transactions).Error
	})

	g.Go(func() error {
		q, err := query()
		if err != nil {
			return err
		}

		return q.Count(&count).Error
	})

	if err := g.Wait(); err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	if transactions == nil {
		transactions = make([]models.Transaction, 0)
	}

	pagination := newPagination(page, limit, count)
	c.JSON(http.StatusOK, TransactionListResponse{
		Data:       transactions,
		Pagination: &pagination,
	})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. All fields need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [put]
func UpdateTransaction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ? AND user_id = ?", id, identity.UserID(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	var editable TransactionEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	err = models.DB.Model(&transaction).
		Select("Name", "Amount", "Date", "CategoryID", "ReceiptImageURL").
		Updates(editable.model(transaction.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	err = models.DB.Preload("Category").First(&transaction, transaction.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		200	{object}	httpError
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ? AND user_id = ?", id, identity.UserID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
