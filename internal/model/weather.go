package model

const (
	AlertWarning = "warning"
	AlertDanger  = "danger"
)

type CurrentConditions struct {
	Temperature float64
	Condition   string
	Humidity    int
	WindSpeed   float64
	Location    string
}

type ForecastDay struct {
	Day       string
	MaxTemp   string
	Condition string
}

type Alert struct {
	Type string
	Text string
}

// WeatherReport is the normalized view the weather aggregator produces.
// LocationResolved reports whether the location label came from a geocoding
// hit or from the default/caller coordinates.
type WeatherReport struct {
	Current          CurrentConditions
	Alerts           []Alert
	SmartTip         string
	Forecast         []ForecastDay
	LocationResolved bool
}
