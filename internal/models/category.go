package models

import (
	"strings"

	"gorm.io/gorm"
)

// CategoryType determines whether transactions in a category count
// towards income or expenses.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a classification tag for transactions.
type Category struct {
	DefaultModel
	User   User         `json:"-"`
	UserID string       `json:"userId" gorm:"uniqueIndex:category_user_id_name"`
	Name   string       `json:"name" gorm:"uniqueIndex:category_user_id_name"`
	Type   CategoryType `json:"type"`
	Icon   string       `json:"icon"`
}

// BeforeSave ensures consistency for the category.
//
// It validates the category type and trims whitespace from all strings.
func (category *Category) BeforeSave(_ *gorm.DB) error {
	if category.Type != CategoryTypeIncome && category.Type != CategoryTypeExpense {
		return ErrCategoryTypeInvalid
	}

	category.Name = strings.TrimSpace(category.Name)
	category.Icon = strings.TrimSpace(category.Icon)

	return nil
}

func (category *Category) BeforeCreate(tx *gorm.DB) error {
	_ = category.DefaultModel.BeforeCreate(tx)

	return category.checkIntegrity(tx)
}

// checkIntegrity verifies that the owning user has been mirrored
// from the identity provider.
func (category *Category) checkIntegrity(tx *gorm.DB) error {
	return tx.First(&User{}, "id = ?", category.UserID).Error
}

// CategoryNames returns the names of all categories belonging to a user.
// It is used to constrain the receipt extraction schema.
func CategoryNames(db *gorm.DB, userID string) ([]string, error) {
	var names []string

	err := db.Model(&Category{}).
		Where(&Category{UserID: userID}).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}

	return names, nil
}
