package engine

import (
	"fmt"
	"time"

	"github.com/AntonStoeckl/lending-library-go/lending/core"
)

func lentMessage(holder *core.Holder, item *core.CatalogItem, loan core.LoanRecord) string {
	return fmt.Sprintf("%s borrowed '%s'. Due back on %s.", holder.DisplayName, item.Title, loan.DueAt().Format(time.DateOnly))
}

func returnedMessage(holder *core.Holder, item *core.CatalogItem, loan core.LoanRecord) string {
	completedAt, _ := loan.CompletedAt()

	if days := loan.OverdueDays(completedAt); days > 0 {
		return fmt.Sprintf("%s returned '%s' %s late!", holder.DisplayName, item.Title, dayCount(days))
	}

	return fmt.Sprintf("%s returned '%s' on time.", holder.DisplayName, item.Title)
}

func overdueMessage(holder *core.Holder, item *core.CatalogItem, loan core.LoanRecord, now time.Time) string {
	return fmt.Sprintf(
		"Reminder for %s: '%s' is %s overdue, it was due on %s.",
		holder.DisplayName,
		item.Title,
		dayCount(loan.OverdueDays(now)),
		loan.DueAt().Format(time.DateOnly),
	)
}

func dayCount(days int) string {
	if days == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", days)
}
