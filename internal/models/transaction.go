package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single dated monetary record.
//
// The amount is stored unsigned. Whether it counts towards income or
// expenses is derived from the type of its category.
type Transaction struct {
	DefaultModel
	User            User            `json:"-"`
	UserID          string          `json:"userId"`
	Category        Category        `json:"category"`
	CategoryID      uuid.UUID       `json:"categoryId"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Date            time.Time       `json:"date"`
	ReceiptImageURL string          `json:"receiptImageUrl"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	_ = t.DefaultModel.AfterFind(tx)

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave sets the timezone for the Date to UTC and
// trims whitespace from all strings.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Name = strings.TrimSpace(t.Name)
	t.ReceiptImageURL = strings.TrimSpace(t.ReceiptImageURL)

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	return t.checkIntegrity(tx, *t)
}

// BeforeUpdate verifies the category reference before committing
// an update to the database.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryID") {
		toSave, ok := tx.Statement.Dest.(Transaction)
		if !ok {
			return nil
		}

		toSave.UserID = t.UserID
		return t.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies that the referenced category exists and belongs
// to the same user as the transaction. Without this check, a transaction
// could reference another user's category and leak its name through the
// dashboard.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	var category Category
	err := tx.First(&category, toSave.CategoryID).Error
	if err != nil {
		return err
	}

	if category.UserID != toSave.UserID {
		return ErrCategoryMismatch
	}

	return nil
}
