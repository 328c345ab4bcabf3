package domain

import "time"

// ForecastDay is one day of the outlook: a date and temperature from the
// temperature series joined with the resolved condition symbol from the
// symbol series.
type ForecastDay struct {
	Date        time.Time `json:"date"`
	Temperature float64   `json:"temperature"`
	Symbol      Symbol    `json:"symbol"`
}

// BuildForecastDays joins the temperature and condition-code series by
// position: index i of both series describes the same day. The provider
// returns the two series date-aligned, so no keyed lookup is performed; if
// the series lengths ever diverge, output is truncated to the shorter one.
// The condition value is truncated to an integer code and resolved via
// ResolveSymbol.
func BuildForecastDays(temperature, symbol []Sample) []ForecastDay {
	n := len(temperature)
	if len(symbol) < n {
		n = len(symbol)
	}

	days := make([]ForecastDay, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, ForecastDay{
			Date:        temperature[i].Date,
			Temperature: temperature[i].Value,
			Symbol:      ResolveSymbol(int(symbol[i].Value)),
		})
	}
	return days
}
