package v1_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/yash-sojitra/Hisab/internal/controllers/v1"
	"github.com/yash-sojitra/Hisab/internal/models"
	"github.com/yash-sojitra/Hisab/test"
)

func (suite *TestSuiteStandard) TestSummary() {
	_ = createTestUser(suite.T(), "user_summary")
	_ = createTestUser(suite.T(), "user_unrelated")

	groceries := createTestCategory(suite.T(), "user_summary", v1.CategoryEditable{Name: "Groceries", Type: models.CategoryTypeExpense})
	rent := createTestCategory(suite.T(), "user_summary", v1.CategoryEditable{Name: "Rent", Type: models.CategoryTypeExpense})
	salary := createTestCategory(suite.T(), "user_summary", v1.CategoryEditable{Name: "Salary", Type: models.CategoryTypeIncome})

	now := time.Now().In(time.UTC)

	_ = createTestTransaction(suite.T(), "user_summary", v1.TransactionEditable{CategoryID: groceries.Data.ID, Amount: decimal.NewFromFloat(500), Date: now})
	_ = createTestTransaction(suite.T(), "user_summary", v1.TransactionEditable{CategoryID: groceries.Data.ID, Amount: decimal.NewFromFloat(300), Date: now})
	_ = createTestTransaction(suite.T(), "user_summary", v1.TransactionEditable{CategoryID: rent.Data.ID, Amount: decimal.NewFromFloat(1200), Date: now})
	_ = createTestTransaction(suite.T(), "user_summary", v1.TransactionEditable{CategoryID: salary.Data.ID, Amount: decimal.NewFromFloat(2000), Date: now})

	// Outside the current month, must not be counted
	_ = createTestTransaction(suite.T(), "user_summary", v1.TransactionEditable{CategoryID: groceries.Data.ID, Amount: decimal.NewFromFloat(9999), Date: now.AddDate(0, -2, 0)})

	// Another user's transactions must not be counted
	_ = createTestTransaction(suite.T(), "user_unrelated", v1.TransactionEditable{Amount: decimal.NewFromFloat(777), Date: now})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/summary", "", test.Token("user_summary"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.TotalIncome.Equal(decimal.NewFromFloat(2000)), "Total income is %s, expected 2000", response.Data.TotalIncome)
	assert.True(suite.T(), response.Data.TotalExpense.Equal(decimal.NewFromFloat(2000)), "Total expense is %s, expected 2000", response.Data.TotalExpense)

	if assert.Len(suite.T(), response.Data.IncomeByCategory, 1) {
		assert.Equal(suite.T(), "Salary", response.Data.IncomeByCategory[0].Category)
		assert.True(suite.T(), response.Data.IncomeByCategory[0].Total.Equal(decimal.NewFromFloat(2000)))
	}

	// The expense breakdown is ordered by summed amount, descending
	if assert.Len(suite.T(), response.Data.ExpenseByCategory, 2) {
		assert.Equal(suite.T(), "Rent", response.Data.ExpenseByCategory[0].Category)
		assert.True(suite.T(), response.Data.ExpenseByCategory[0].Total.Equal(decimal.NewFromFloat(1200)))

		assert.Equal(suite.T(), "Groceries", response.Data.ExpenseByCategory[1].Category)
		assert.True(suite.T(), response.Data.ExpenseByCategory[1].Total.Equal(decimal.NewFromFloat(800)))
	}
}

// TestSummaryEmpty verifies that the summary returns zero totals and
// empty breakdowns for a month without transactions.
func (suite *TestSuiteStandard) TestSummaryEmpty() {
	_ = createTestUser(suite.T(), "user_no_transactions")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/summary", "", test.Token("user_no_transactions"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.JSONEq(suite.T(), `{
		"data": {
			"totalIncome": "0",
			"totalExpense": "0",
			"incomeByCategory": [],
			"expenseByCategory": []
		},
		"error": null
	}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestSummaryUnauthenticated() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
