package market

// InstrumentMeta carries the sizing rules the balance tracker needs to turn
// a cash balance into an order quantity.
type InstrumentMeta struct {
	Name           string
	BaseCurrency   string
	QuoteCurrency  string
	LotSize        float64 // minimum tradeable increment in units
	MinimumUnits   float64 // smallest order the venue accepts
	PricePrecision int
}

var Instruments = map[string]InstrumentMeta{
	"EUR_USD": {
		Name:           "EUR_USD",
		BaseCurrency:   "EUR",
		QuoteCurrency:  "USD",
		LotSize:        1000,
		MinimumUnits:   1000,
		PricePrecision: 5,
	},
	"USD_JPY": {
		Name:           "USD_JPY",
		BaseCurrency:   "USD",
		QuoteCurrency:  "JPY",
		LotSize:        1000,
		MinimumUnits:   1000,
		PricePrecision: 3,
	},
	"GBP_USD": {
		Name:           "GBP_USD",
		BaseCurrency:   "GBP",
		QuoteCurrency:  "USD",
		LotSize:        1000,
		MinimumUnits:   1000,
		PricePrecision: 5,
	},
	"BTC_USD": {
		Name:           "BTC_USD",
		BaseCurrency:   "BTC",
		QuoteCurrency:  "USD",
		LotSize:        0.001,
		MinimumUnits:   0.001,
		PricePrecision: 2,
	},
}
