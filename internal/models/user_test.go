package models_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yash-sojitra/Hisab/internal/models"
)

func (suite *TestSuiteStandard) TestUserCreateWithDefaultCategories() {
	user := suite.createTestUser("user_defaults")

	var categories []models.Category
	require.NoError(suite.T(), models.DB.Where(&models.Category{UserID: user.ID}).Find(&categories).Error)
	assert.Len(suite.T(), categories, 10)

	var income, expense int
	for _, category := range categories {
		switch category.Type {
		case models.CategoryTypeIncome:
			income++
		case models.CategoryTypeExpense:
			expense++
		}

		assert.NotEmpty(suite.T(), category.Icon, "Category %s has no icon", category.Name)
	}

	assert.Equal(suite.T(), 3, income)
	assert.Equal(suite.T(), 7, expense)
}

// TestUserCreateAtomic verifies that a failing user creation does not
// leave a partial category set behind.
func (suite *TestSuiteStandard) TestUserCreateAtomic() {
	_ = suite.createTestUser("user_first")

	// Same email as the first user, so the insert fails
	duplicate := models.User{
		ID:    "user_second",
		Email: "user_first@example.com",
	}

	err := duplicate.CreateWithDefaultCategories(models.DB)
	require.ErrorIs(suite.T(), err, models.ErrEmailNotUnique)

	var users int64
	require.NoError(suite.T(), models.DB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(suite.T(), int64(1), users)

	var categories int64
	require.NoError(suite.T(), models.DB.Model(&models.Category{}).Where("user_id = ?", "user_second").Count(&categories).Error)
	assert.Equal(suite.T(), int64(0), categories)
}

func (suite *TestSuiteStandard) TestUserTrimsWhitespace() {
	user := models.User{
		ID:        " user_whitespace ",
		Email:     " space@example.com ",
		FirstName: " Jane ",
		LastName:  " Doe ",
	}

	require.NoError(suite.T(), models.DB.Create(&user).Error)

	assert.Equal(suite.T(), "user_whitespace", user.ID)
	assert.Equal(suite.T(), "space@example.com", user.Email)
	assert.Equal(suite.T(), "Jane", user.FirstName)
	assert.Equal(suite.T(), "Doe", user.LastName)
}
