// Package domain models the data behind the tropics and severe weather
// dashboard.
//
// # Data Sources
//
// Storm bulletins come from NOAA syndication feeds: the National Hurricane
// Center Atlantic outlook (https://www.nhc.noaa.gov/nhc_at1.xml) and the Storm
// Prediction Center watch/warning feed
// (https://www.spc.noaa.gov/products/spcwwrss.xml). Each feed lists dated
// items with a short description; the dashboard surfaces the first
// description in document order.
//
// Weather measurements come from the Meteomatics API, which serves scalar
// readings keyed by physical quantity, unit, coordinate, and time. Queries
// are templated as
//
//	{base}/{time-spec}/{quantity}/{lat},{lon}/json
//
// where {time-spec} is a single ISO-8601 UTC instant for current conditions,
// or a "start--end:interval" range for forecasts (interval as an ISO-8601
// duration, e.g. PT24H for daily samples). Responses nest as
// data[].coordinates[].dates[].value.
//
// # Weather Symbol Convention
//
// Meteomatics weather_symbol_1h:idx values are small integer condition codes:
// 0 means the symbol could not be determined, 1-16 are daytime conditions
// (clear sky through sandstorm), and code+100 is the same condition observed
// at night. [ResolveSymbol] maps any integer to a description and icon,
// falling back to an "Unknown symbol" pair for codes outside the table.
//
// # Forecast Join
//
// The daily forecast is assembled from two independently fetched series
// (temperature and condition code) that the provider returns date-aligned by
// position. [BuildForecastDays] joins them by index, matching the upstream
// contract.
package domain
