package blockchain

import (
	"math/big"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FilToAttoFil converts a FIL amount to its smallest unit attoFIL (18 decimals).
//
// Supported input types for iamount: string, float64, int64, decimal.Decimal,
// *decimal.Decimal. Any other type results in an error.
//
// The returned value is a *big.Int representing amount * 10^18.
func FilToAttoFil(iamount any) (atto *big.Int, err error) {
	base := 10
	amount := decimal.NewFromFloat(0)
	switch v := iamount.(type) {
	case string:
		amount, err = decimal.NewFromString(v)
		if err != nil {
			zap.L().Error("Failed to convert string to decimal", zap.Error(err))
			return nil, err
		}
	case float64:
		amount = decimal.NewFromFloat(v)
	case int64:
		amount = decimal.NewFromFloat(float64(v))
	case decimal.Decimal:
		amount = v
	case *decimal.Decimal:
		amount = *v
	default:
		zap.L().Error("Unsupported type")
	}
	dec, pow := float64(10), float64(18)
	mul := decimal.NewFromFloat(dec).Pow(decimal.NewFromFloat(pow))
	result := amount.Mul(mul)

	atto = new(big.Int)
	atto.SetString(result.String(), base)

	return
}

// AttoFilToFil converts an attoFIL amount (smallest unit, 18 decimals) into
// FIL as a decimal.Decimal with 18 digits of precision.
//
// Supported input types for ivalue: string, *big.Int, int.
// Any other type results in decimal.Zero and logs an error.
func AttoFilToFil(ivalue any) decimal.Decimal {
	value := new(big.Int)
	base := 10
	switch v := ivalue.(type) {
	case string:
		value.SetString(v, base)
	case *big.Int:
		value = v
	case int:
		value.SetInt64(int64(v))
	default:
		zap.L().Error("Unsupported type")
		return decimal.Zero
	}
	dec, pow := float64(10), float64(18)
	mul := decimal.NewFromFloat(dec).Pow(decimal.NewFromFloat(pow))
	num, err := decimal.NewFromString(value.String())
	if err != nil {
		zap.L().Error("Failed to convert string to decimal", zap.Error(err))
	}
	precision := int32(18)
	result := num.DivRound(mul, precision)

	return result
}
