// Package currencyutils provides amount coercion from noisy source strings
// and the dashboard's short-form and full-form number display rules.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolRe = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]`)

// CoerceAmount parses a string representation of an amount into a decimal
// value. It handles formats like "1,234.56", "1.234,56", "1'234.56" and
// embedded currency symbols. Non-numeric input coerces to zero; the
// aggregation pass must never see a NaN-like value.
func CoerceAmount(amountStr string) decimal.Decimal {
	if amountStr == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(StandardizeAmount(amountStr))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// StandardizeAmount converts various amount string formats to a standard
// form parseable by decimal.NewFromString. Handles patterns like
// "SAR 1'234.56", "€1.234,56", "$1,234.56" and "1 234,56".
func StandardizeAmount(amountStr string) string {
	// Remove currency symbols and whitespace
	amountStr = symbolRe.ReplaceAllString(amountStr, "")
	amountStr = strings.TrimPrefix(strings.ToUpper(amountStr), "SAR")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// US format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes as thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// Formatter renders numbers for the dashboard, prefixing currency values
// with a currency marker and suffixing counts with a unit marker.
type Formatter struct {
	CurrencyMarker string
	UnitMarker     string
}

// NewFormatter returns a Formatter with the given markers, falling back to
// the dashboard defaults when empty.
func NewFormatter(currencyMarker, unitMarker string) *Formatter {
	if currencyMarker == "" {
		currencyMarker = "SAR"
	}
	if unitMarker == "" {
		unitMarker = "Units"
	}
	return &Formatter{CurrencyMarker: currencyMarker, UnitMarker: unitMarker}
}

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// Short renders the compact KPI form: values of a million or more as
// "1.2 M", a thousand or more as "3.4 K" (a trailing ".0" is dropped),
// anything smaller with thousands separators. Currency values are rounded
// to 2 decimals first and carry the currency marker as prefix; other
// values are rounded to the nearest integer and carry the unit marker as
// suffix.
func (f *Formatter) Short(val decimal.Decimal, isCurrency bool) string {
	var rounded decimal.Decimal
	if isCurrency {
		rounded = val.Round(2)
	} else {
		rounded = val.Round(0)
	}

	var formatted string
	switch {
	case rounded.GreaterThanOrEqual(million):
		formatted = trimPointZero(rounded.Div(million).StringFixed(1)) + " M"
	case rounded.GreaterThanOrEqual(thousand):
		formatted = trimPointZero(rounded.Div(thousand).StringFixed(1)) + " K"
	default:
		formatted = groupThousands(rounded.String())
	}

	if isCurrency {
		return f.CurrencyMarker + " " + formatted
	}
	return formatted + " " + f.UnitMarker
}

// Full renders the detail form used for tooltips: currency values with
// exactly two decimals and thousands separators, other values rounded to
// the nearest integer with thousands separators.
func (f *Formatter) Full(val decimal.Decimal, isCurrency bool) string {
	if isCurrency {
		return f.CurrencyMarker + " " + groupThousands(val.Round(2).StringFixed(2))
	}
	return groupThousands(val.Round(0).String()) + " " + f.UnitMarker
}

func trimPointZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// groupThousands inserts comma separators into the integer part of a
// decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
