package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User mirrors a user managed by the external identity provider.
// The ID is the identity provider's user id, so no UUID is generated
// locally. Users are only ever created through the webhook sync.
type User struct {
	ID        string `json:"id" gorm:"primaryKey" example:"user_2y4K7wWdbqGxTYvPmXCvansAT9z"` // ID assigned by the identity provider
	Timestamps
	Email     string           `json:"email" gorm:"uniqueIndex"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Budget    *decimal.Decimal `json:"budget" gorm:"type:DECIMAL(20,8)"` // Optional monthly budget ceiling
}

// BeforeSave trims whitespace from all strings
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.ID = strings.TrimSpace(u.ID)
	u.Email = strings.TrimSpace(u.Email)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)

	return nil
}

// defaultCategories is the category set every new user starts with.
// "Other" doubles as the fallback category for receipt extraction.
var defaultCategories = []Category{
	{Name: "Groceries", Type: CategoryTypeExpense, Icon: "🛒"},
	{Name: "Rent", Type: CategoryTypeExpense, Icon: "🏠"},
	{Name: "Transport", Type: CategoryTypeExpense, Icon: "🚌"},
	{Name: "Utilities", Type: CategoryTypeExpense, Icon: "💡"},
	{Name: "Entertainment", Type: CategoryTypeExpense, Icon: "🎬"},
	{Name: "Health", Type: CategoryTypeExpense, Icon: "🏥"},
	{Name: "Salary", Type: CategoryTypeIncome, Icon: "💰"},
	{Name: "Freelance", Type: CategoryTypeIncome, Icon: "💻"},
	{Name: "Investments", Type: CategoryTypeIncome, Icon: "📈"},
	{Name: "Other", Type: CategoryTypeExpense, Icon: "📦"},
}

// CreateWithDefaultCategories creates the user and their default category
// set in a single database transaction, so a failure cannot leave a user
// with a partial category set.
func (u *User) CreateWithDefaultCategories(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		categories := make([]Category, 0, len(defaultCategories))
		for _, category := range defaultCategories {
			category.UserID = u.ID
			categories = append(categories, category)
		}

		return tx.Create(&categories).Error
	})
}
