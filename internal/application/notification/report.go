package notification

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
)

// Report is the formatted expiring-sales digest handed to the mail transport.
// PlainBody and HTMLBody are built from the same rows and always agree on content.
type Report struct {
	Subject   string
	PlainBody string
	HTMLBody  string
}

// BuildReport renders the digest for the given sales. Returns nil for empty
// input, which is the no-send signal. Deterministic given sales and now.
func BuildReport(sales []entity.ExpiringSale, now time.Time) *Report {
	if len(sales) == 0 {
		return nil
	}

	today := DateOf(now)
	sentAt := now.Format("2006-01-02 15:04:05")

	var plain strings.Builder
	plain.WriteString("Sales Expiring Soon\n")
	plain.WriteString(strings.Repeat("=", 20) + "\n\n")

	var rich strings.Builder
	rich.WriteString("<html><body>\n")
	rich.WriteString("<h2>Sales Expiring Soon</h2>\n")
	rich.WriteString("<table border='1' cellpadding='8' cellspacing='0' style='border-collapse: collapse;'>\n")
	rich.WriteString("<tr style='background-color: #f2f2f2;'>\n")
	rich.WriteString("<th>Product</th><th>Sale Price</th><th>End Date</th><th>Days Remaining</th>\n")
	rich.WriteString("</tr>\n")

	for _, sale := range sales {
		// Never negative: the scanner's window starts at today.
		daysLeft := DaysBetween(today, DateOf(sale.SaleEnd))
		status := "TODAY"
		if daysLeft != 0 {
			status = fmt.Sprintf("%d days", daysLeft)
		}

		fmt.Fprintf(&plain, "%s: $%s (ends %s)\n", sale.ProductName, sale.SalePrice.StringFixed(2), status)

		rowColor := "#fff"
		if daysLeft == 0 {
			rowColor = "#ffebee"
		}
		fmt.Fprintf(&rich, "<tr style='background-color: %s;'>", rowColor)
		fmt.Fprintf(&rich, "<td>%s</td><td>$%s</td><td>%s</td><td><strong>%s</strong></td></tr>\n",
			html.EscapeString(sale.ProductName), sale.SalePrice.StringFixed(2),
			sale.SaleEnd.Format("2006-01-02"), status)
	}

	plain.WriteString("\nPlease take action on these sales as needed.\n\n")
	fmt.Fprintf(&plain, "Sent at: %s\n", sentAt)

	rich.WriteString("</table>\n")
	rich.WriteString("<br><p>Please take action on these sales as needed.</p>\n")
	fmt.Fprintf(&rich, "<p><small>Sent at: %s</small></p>\n", sentAt)
	rich.WriteString("</body></html>\n")

	return &Report{
		Subject:   fmt.Sprintf("Sales Notification - %d sales expiring soon", len(sales)),
		PlainBody: plain.String(),
		HTMLBody:  rich.String(),
	}
}

// DateOf truncates a timestamp to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole days from one date to another, both already
// truncated with DateOf.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
