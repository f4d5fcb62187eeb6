package v1

import (
	"github.com/yash-sojitra/Hisab/internal/models"
)

type CategoryEditable struct {
	Name string              `json:"name" binding:"required" example:"Groceries"`   // Name of the category
	Type models.CategoryType `json:"type" binding:"required" example:"expense"`     // income or expense
	Icon string              `json:"icon" example:"🛒"`                              // Optional icon for the UI
}

// model returns the database resource for the API representation of the
// editable fields, owned by the passed user.
func (editable CategoryEditable) model(userID string) models.Category {
	return models.Category{
		UserID: userID,
		Name:   editable.Name,
		Type:   editable.Type,
		Icon:   editable.Icon,
	}
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`  // The category
	Error *string          `json:"error"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`  // List of categories
	Error *string           `json:"error"` // The error, if any occurred
}
