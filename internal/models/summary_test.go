package models_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yash-sojitra/Hisab/internal/models"
)

// createSummaryTransaction inserts a transaction for a named default
// category on the given date.
func (suite *TestSuiteStandard) createSummaryTransaction(userID, categoryName string, amount float64, date time.Time) {
	transaction := models.Transaction{
		UserID:     userID,
		CategoryID: suite.category(userID, categoryName).ID,
		Name:       categoryName,
		Amount:     decimal.NewFromFloat(amount),
		Date:       date,
	}

	require.NoError(suite.T(), models.DB.Create(&transaction).Error)
}

// TestMonthlySummaryWindow verifies that the summary covers exactly the
// calendar month, from the first instant to the last day inclusive.
func (suite *TestSuiteStandard) TestMonthlySummaryWindow() {
	user := suite.createTestUser("user_window")

	// Inside the month
	suite.createSummaryTransaction(user.ID, "Groceries", 100, time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC))
	suite.createSummaryTransaction(user.ID, "Groceries", 200, time.Date(2022, 4, 30, 23, 59, 0, 0, time.UTC))

	// Outside the month
	suite.createSummaryTransaction(user.ID, "Groceries", 1000, time.Date(2022, 3, 31, 23, 59, 0, 0, time.UTC))
	suite.createSummaryTransaction(user.ID, "Groceries", 1000, time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC))

	summary, err := models.MonthlySummary(context.Background(), models.DB, user.ID, time.Date(2022, 4, 17, 12, 0, 0, 0, time.UTC))
	require.NoError(suite.T(), err)

	assert.True(suite.T(), summary.TotalExpense.Equal(decimal.NewFromFloat(300)), "Total expense is %s, expected 300", summary.TotalExpense)
	assert.True(suite.T(), summary.TotalIncome.IsZero(), "Total income is %s, expected 0", summary.TotalIncome)
}

func (suite *TestSuiteStandard) TestMonthlySummaryBreakdown() {
	user := suite.createTestUser("user_breakdown")
	date := time.Date(2022, 4, 10, 8, 0, 0, 0, time.UTC)

	suite.createSummaryTransaction(user.ID, "Groceries", 500, date)
	suite.createSummaryTransaction(user.ID, "Groceries", 300, date)
	suite.createSummaryTransaction(user.ID, "Rent", 1200, date)
	suite.createSummaryTransaction(user.ID, "Salary", 2000, date)
	suite.createSummaryTransaction(user.ID, "Freelance", 250, date)

	summary, err := models.MonthlySummary(context.Background(), models.DB, user.ID, date)
	require.NoError(suite.T(), err)

	assert.True(suite.T(), summary.TotalIncome.Equal(decimal.NewFromFloat(2250)), "Total income is %s, expected 2250", summary.TotalIncome)
	assert.True(suite.T(), summary.TotalExpense.Equal(decimal.NewFromFloat(2000)), "Total expense is %s, expected 2000", summary.TotalExpense)

	// Both breakdowns are ordered by summed amount, descending
	if assert.Len(suite.T(), summary.IncomeByCategory, 2) {
		assert.Equal(suite.T(), "Salary", summary.IncomeByCategory[0].Category)
		assert.Equal(suite.T(), "Freelance", summary.IncomeByCategory[1].Category)
	}

	if assert.Len(suite.T(), summary.ExpenseByCategory, 2) {
		assert.Equal(suite.T(), "Rent", summary.ExpenseByCategory[0].Category)
		assert.True(suite.T(), summary.ExpenseByCategory[0].Total.Equal(decimal.NewFromFloat(1200)))

		assert.Equal(suite.T(), "Groceries", summary.ExpenseByCategory[1].Category)
		assert.True(suite.T(), summary.ExpenseByCategory[1].Total.Equal(decimal.NewFromFloat(800)))
	}
}

func (suite *TestSuiteStandard) TestMonthlySummaryEmpty() {
	user := suite.createTestUser("user_empty")

	summary, err := models.MonthlySummary(context.Background(), models.DB, user.ID, time.Now())
	require.NoError(suite.T(), err)

	assert.True(suite.T(), summary.TotalIncome.IsZero())
	assert.True(suite.T(), summary.TotalExpense.IsZero())
	assert.Empty(suite.T(), summary.IncomeByCategory)
	assert.Empty(suite.T(), summary.ExpenseByCategory)
	assert.NotNil(suite.T(), summary.IncomeByCategory)
	assert.NotNil(suite.T(), summary.ExpenseByCategory)
}
