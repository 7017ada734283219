package repository

import "github.com/shopspring/decimal"

// NUMERIC columns scan into decimals; the models carry float64.

func floatOrNil(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

// decimalArg binds an optional float to a NUMERIC parameter, nil stays NULL.
func decimalArg(v *float64) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(*v), Valid: true}
}
