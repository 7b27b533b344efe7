package notification_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZachChoo/grocery-inventory/internal/application/notification"
	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
)

var reportNow = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func saleEndingIn(name string, price float64, days int) entity.ExpiringSale {
	return entity.ExpiringSale{
		ProductName: name,
		SalePrice:   decimal.NewFromFloat(price),
		SaleEnd:     notification.DateOf(reportNow).AddDate(0, 0, days),
	}
}

func TestBuildReport_EmptyInputIsNoSend(t *testing.T) {
	assert.Nil(t, notification.BuildReport(nil, reportNow))
	assert.Nil(t, notification.BuildReport([]entity.ExpiringSale{}, reportNow))
}

func TestBuildReport_MentionsEveryProductOnceInBothForms(t *testing.T) {
	sales := []entity.ExpiringSale{
		saleEndingIn("Widget", 7.99, 1),
		saleEndingIn("Gizmo", 3.50, 0),
		saleEndingIn("Sprocket", 12.00, 29),
	}
	report := notification.BuildReport(sales, reportNow)
	require.NotNil(t, report)

	for _, sale := range sales {
		assert.Equal(t, 1, strings.Count(report.PlainBody, sale.ProductName),
			"plain body must mention %s exactly once", sale.ProductName)
		assert.Equal(t, 1, strings.Count(report.HTMLBody, sale.ProductName),
			"html body must mention %s exactly once", sale.ProductName)
		assert.Contains(t, report.PlainBody, "$"+sale.SalePrice.StringFixed(2))
		assert.Contains(t, report.HTMLBody, "$"+sale.SalePrice.StringFixed(2))
	}
	assert.Contains(t, report.Subject, "3 sales expiring soon")
}

func TestBuildReport_DayLabels(t *testing.T) {
	report := notification.BuildReport([]entity.ExpiringSale{
		saleEndingIn("Milk", 2.49, 0),
		saleEndingIn("Bread", 1.99, 5),
	}, reportNow)
	require.NotNil(t, report)

	assert.Contains(t, report.PlainBody, "Milk: $2.49 (ends TODAY)")
	assert.Contains(t, report.PlainBody, "Bread: $1.99 (ends 5 days)")

	// The expiring-today row is highlighted in the table.
	assert.Contains(t, report.HTMLBody, "#ffebee")
	assert.Contains(t, report.HTMLBody, "<strong>TODAY</strong>")
	assert.Contains(t, report.HTMLBody, "<strong>5 days</strong>")
}

func TestBuildReport_Deterministic(t *testing.T) {
	sales := []entity.ExpiringSale{saleEndingIn("Widget", 7.99, 2)}
	a := notification.BuildReport(sales, reportNow)
	b := notification.BuildReport(sales, reportNow)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a.PlainBody, b.PlainBody)
	assert.Equal(t, a.HTMLBody, b.HTMLBody)
	assert.Equal(t, a.Subject, b.Subject)
}

func TestBuildReport_BothFormsCarryTimestampAndPrompt(t *testing.T) {
	report := notification.BuildReport([]entity.ExpiringSale{saleEndingIn("Widget", 7.99, 1)}, reportNow)
	require.NotNil(t, report)

	sentAt := reportNow.Format("2006-01-02 15:04:05")
	assert.Contains(t, report.PlainBody, "Sent at: "+sentAt)
	assert.Contains(t, report.HTMLBody, "Sent at: "+sentAt)
	assert.Contains(t, report.PlainBody, "Please take action on these sales as needed.")
	assert.Contains(t, report.HTMLBody, "Please take action on these sales as needed.")
}

func TestBuildReport_EscapesHTMLInProductNames(t *testing.T) {
	report := notification.BuildReport([]entity.ExpiringSale{
		saleEndingIn("Chips <family size>", 4.99, 3),
	}, reportNow)
	require.NotNil(t, report)
	assert.Contains(t, report.HTMLBody, "Chips &lt;family size&gt;")
	assert.NotContains(t, report.HTMLBody, "<family size>")
}

func TestDaysBetween(t *testing.T) {
	today := notification.DateOf(reportNow)
	assert.Equal(t, 0, notification.DaysBetween(today, today))
	assert.Equal(t, 1, notification.DaysBetween(today, today.AddDate(0, 0, 1)))
	assert.Equal(t, 30, notification.DaysBetween(today, today.AddDate(0, 0, 30)))
}
