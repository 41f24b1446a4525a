package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits amounts carry on the wire and in storage.
const MoneyScale = 2

// moneyJSON renders an amount as a bare JSON number with a fixed two-digit fraction.
func moneyJSON(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(MoneyScale))
}
