package output

import (
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

const (
	PaidLabel    = "Pagado"
	PendingLabel = "Pendiente"
)

var (
	paidColor    = color.New(color.FgGreen)
	pendingColor = color.New(color.FgYellow)
)

// Money renders an amount in quetzales.
func Money(d decimal.Decimal) string {
	return "Q" + d.StringFixed(2)
}

// Date renders a canonical ISO timestamp as dd/mm/yyyy. Empty or unreadable
// values render as "-".
func Date(iso string) string {
	if iso == "" {
		return "-"
	}
	t, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		return "-"
	}
	return t.UTC().Format("02/01/2006")
}

func PaidStatus(paid bool) string {
	if paid {
		return PaidLabel
	}
	return PendingLabel
}

// ColoredPaidStatus is PaidStatus for terminals. color disables itself
// when stdout is not a TTY.
func ColoredPaidStatus(paid bool) string {
	if paid {
		return paidColor.Sprint(PaidLabel)
	}
	return pendingColor.Sprint(PendingLabel)
}
