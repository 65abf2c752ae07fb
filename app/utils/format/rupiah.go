package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var rupiah = accounting.Accounting{Symbol: "Rp ", Precision: 0, Thousand: "."}

func Rupiah(amount decimal.Decimal) string {
	return rupiah.FormatMoneyDecimal(amount)
}
