package client

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// isoLayout matches what browsers produce for Date.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
}

// NormalizeClient converts a raw client record into its canonical form.
func NormalizeClient(raw Raw) Client {
	return Client{
		ID:        coerceInt(raw["id"]),
		Name:      coerceString(raw["nombre"]),
		Phone:     coerceString(raw["telefono"]),
		CreatedAt: coerceDate(raw["creado_en"]),
	}
}

// NormalizePurchase converts a raw purchase record into its canonical form.
// A missing cliente_id falls back to the id of an embedded client object.
func NormalizePurchase(raw Raw) Purchase {
	clientID := coerceRef(raw["cliente_id"])
	if clientID == 0 {
		clientID = coerceRef(raw["client"])
	}

	return Purchase{
		ID:           coerceInt(raw["id"]),
		ClientID:     clientID,
		Label:        coerceString(raw["nombre_compra"]),
		TotalAmount:  coerceAmount(raw["monto_total"]),
		PurchaseDate: coerceDate(raw["fecha_compra"]),
		Paid:         coerceBool(raw["pagado"]),
	}
}

// NormalizePayment converts a raw payment record into its canonical form.
// compra_id may be a bare id or the embedded purchase; cliente_id falls back
// to an embedded client and then to the embedded purchase's client.
func NormalizePayment(raw Raw) Payment {
	clientID := coerceRef(raw["cliente_id"])
	if clientID == 0 {
		clientID = coerceRef(raw["cliente"])
	}
	if clientID == 0 {
		if nested, ok := raw["compra_id"].(map[string]any); ok {
			clientID = coerceRef(nested["cliente_id"])
		}
	}

	return Payment{
		ID:          coerceInt(raw["id"]),
		ClientID:    clientID,
		PurchaseID:  coerceRef(raw["compra_id"]),
		Amount:      coerceAmount(raw["monto_abono"]),
		PaymentDate: coerceDate(raw["fecha_abono"]),
		Description: coerceString(raw["description"]),
	}
}

// coerceNumber follows Number(v): finite numeric input passes, anything else is 0.
func coerceNumber(v any) decimal.Decimal {
	switch t := v.(type) {
	case nil:
		return decimal.Zero
	case bool:
		if t {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(t)
	case float32:
		return coerceNumber(float64(t))
	case int:
		return decimal.NewFromInt(int64(t))
	case int64:
		return decimal.NewFromInt(t)
	case json.Number:
		return coerceNumber(string(t))
	case decimal.Decimal:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Zero
		}
		// out of float64 range is Infinity (or 0) for Number()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f == 0 {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// coerceAmount is coerceNumber clamped to non-negative values.
func coerceAmount(v any) decimal.Decimal {
	d := coerceNumber(v)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func coerceInt(v any) int {
	d := coerceNumber(v)
	if d.GreaterThan(maxInt) || d.LessThan(minInt) {
		return 0
	}
	return int(d.IntPart())
}

var (
	maxInt = decimal.NewFromInt(math.MaxInt64)
	minInt = decimal.NewFromInt(math.MinInt64)
)

// coerceRef reduces a foreign key that may be an embedded object to its id.
func coerceRef(v any) int {
	if obj, ok := v.(map[string]any); ok {
		return coerceInt(obj["id"])
	}
	return coerceInt(v)
}

func coerceBool(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return b
		}
		return t != ""
	case map[string]any, []any:
		return true
	default:
		return !coerceNumber(t).IsZero()
	}
}

// coerceDate renders any recognizable date as a UTC ISO timestamp.
// Unrecognized values become "" instead of failing.
func coerceDate(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(isoLayout)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return ""
		}
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.UTC().Format(isoLayout)
			}
		}
		return ""
	case float64, int, int64, json.Number:
		// epoch milliseconds
		ms := coerceNumber(t).IntPart()
		return time.UnixMilli(ms).UTC().Format(isoLayout)
	default:
		return ""
	}
}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if !t {
			return ""
		}
		return "true"
	case float64:
		if t == 0 || math.IsNaN(t) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return coerceString(f)
		}
		return t.String()
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
