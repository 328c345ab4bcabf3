package domain

// Symbol is the human-readable rendering of a weather condition code.
type Symbol struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// UnknownSymbol is returned for condition codes outside the registered table.
var UnknownSymbol = Symbol{Description: "Unknown symbol", Icon: "❓"}

// symbolTable maps Meteomatics weather_symbol_1h:idx codes to descriptions
// and icons. Codes 1-16 are daytime conditions; code+100 is the nighttime
// variant. Code 0 is the provider's sentinel for an undeterminable symbol.
// Read-only after initialization.
var symbolTable = map[int]Symbol{
	0:   {"A weather symbol could not be determined", "❓"},
	1:   {"Clear sky", "☀️"},
	101: {"Clear sky (night)", "🌕"},
	2:   {"Light clouds", "🌤"},
	102: {"Light clouds (night)", "🌥"},
	3:   {"Partly cloudy", "⛅"},
	103: {"Partly cloudy (night)", "☁️"},
	4:   {"Cloudy", "☁️"},
	104: {"Cloudy (night)", "☁️"},
	5:   {"Rain", "🌧"},
	105: {"Rain (night)", "🌧"},
	6:   {"Rain and snow / sleet", "🌨"},
	106: {"Rain and snow / sleet (night)", "🌨"},
	7:   {"Snow", "❄️"},
	107: {"Snow (night)", "❄️"},
	8:   {"Rain shower", "🌦"},
	108: {"Rain shower (night)", "🌦"},
	9:   {"Snow shower", "🌨"},
	109: {"Snow shower (night)", "🌨"},
	10:  {"Sleet shower", "🌨"},
	110: {"Sleet shower (night)", "🌨"},
	11:  {"Light fog", "🌫️"},
	111: {"Light fog (night)", "🌫️"},
	12:  {"Dense fog", "🌫️"},
	112: {"Dense fog (night)", "🌫️"},
	13:  {"Freezing rain", "🌧❄️"},
	113: {"Freezing rain (night)", "🌧❄️"},
	14:  {"Thunderstorms", "⛈"},
	114: {"Thunderstorms (night)", "⛈"},
	15:  {"Drizzle", "🌧"},
	115: {"Drizzle (night)", "🌧"},
	16:  {"Sandstorm", "🌪️"},
	116: {"Sandstorm (night)", "🌪️"},
}

// ResolveSymbol maps a condition code to its description and icon. Total over
// all integers: codes outside the table resolve to [UnknownSymbol].
func ResolveSymbol(code int) Symbol {
	if s, ok := symbolTable[code]; ok {
		return s
	}
	return UnknownSymbol
}
