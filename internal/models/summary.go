package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// CategoryTotal is the summed amount for a single category.
type CategoryTotal struct {
	Category string          `json:"category"` // Name of the category
	Total    decimal.Decimal `json:"total"`    // Sum of all transaction amounts in the category
}

// MonthSummary is the dashboard aggregate for one calendar month.
type MonthSummary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	IncomeByCategory  []CategoryTotal `json:"incomeByCategory"`
	ExpenseByCategory []CategoryTotal `json:"expenseByCategory"`
}

type typeTotal struct {
	Type  CategoryType
	Total decimal.Decimal
}

type categoryTypeTotal struct {
	Name  string
	Type  CategoryType
	Total decimal.Decimal
}

// monthWindow returns the first and last instant of the calendar month
// that contains t. The end bound is pushed to the last millisecond of
// the month's final day so that a query with "date <= until" includes
// the whole day.
func monthWindow(t time.Time) (from, until time.Time) {
	from = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	until = from.AddDate(0, 1, 0).Add(-time.Millisecond)
	return
}

// MonthlySummary computes the dashboard summary for the calendar month
// containing now.
//
// Transactions are joined to their category and summed in two grouped
// queries run concurrently: once by category type for the income and
// expense totals, once by (category name, type) for the per-category
// breakdown, ordered by summed amount descending.
func MonthlySummary(ctx context.Context, db *gorm.DB, userID string, now time.Time) (MonthSummary, error) {
	from, until := monthWindow(now)

	scoped := func() *gorm.DB {
		return db.WithContext(ctx).
			Table("transactions").
			Joins("JOIN categories ON categories.id = transactions.category_id").
			Where("transactions.user_id = ?", userID).
			Where("datetime(transactions.date) >= datetime(?)", from).
			Where("datetime(transactions.date) <= datetime(?)", until)
	}

	var typeTotals []typeTotal
	var categoryTotals []categoryTypeTotal

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return scoped().
			Select("categories.type AS type, SUM(transactions.amount) AS total").
			Group("categories.type").
			Scan(&typeTotals).Error
	})

	g.Go(func() error {
		return scoped().
			Select("categories.name AS name, categories.type AS type, SUM(transactions.amount) AS total").
			Group("categories.name, categories.type").
			Order("SUM(transactions.amount) DESC").
			Scan(&categoryTotals).Error
	})

	if err := g.Wait(); err != nil {
		return MonthSummary{}, err
	}

	// Income and expense default to 0 when the month has no matching
	// transactions
	summary := MonthSummary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		IncomeByCategory:  make([]CategoryTotal, 0),
		ExpenseByCategory: make([]CategoryTotal, 0),
	}

	for _, t := range typeTotals {
		switch t.Type {
		case CategoryTypeIncome:
			summary.TotalIncome = t.Total
		case CategoryTypeExpense:
			summary.TotalExpense = t.Total
		}
	}

	for _, t := range categoryTotals {
		total := CategoryTotal{Category: t.Name, Total: t.Total}
		if t.Type == CategoryTypeIncome {
			summary.IncomeByCategory = append(summary.IncomeByCategory, total)
		} else {
			summary.ExpenseByCategory = append(summary.ExpenseByCategory, total)
		}
	}

	return summary, nil
}
