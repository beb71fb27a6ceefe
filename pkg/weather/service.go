// Package weather aggregates Open-Meteo forecasts into the farmer-facing
// view model: mapped conditions, field-work alerts and a five-day outlook.
package weather

import (
	"fmt"
	"math"
	"time"

	"agroworld/internal/model"
	"agroworld/pkg/geo"
)

// Default coordinates (Nagpur) used when the caller supplies none and
// geocoding cannot improve on them.
const (
	DefaultLat = 21.1458
	DefaultLon = 79.0882
)

const (
	windAlertThreshold   = 20.0 // km/h
	rainAlertThresholdMM = 10.0

	rainTip = "“Avoid fertilizer & pesticide spraying in the next 24 hours due to predicted heavy rains.”"
	windTip = "“Avoid spraying pesticides today due to high wind speeds.”"

	forecastDays = 5
)

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var conditionByCode = map[int]string{
	0:  "Sunny",
	1:  "Mainly Clear",
	2:  "Partly Cloudy",
	3:  "Overcast",
	45: "Foggy",
	51: "Drizzle",
	61: "Rainy",
	71: "Snowy",
	80: "Rain Showers",
	95: "Thunderstorm",
}

type forecastProvider interface {
	Fetch(lat, lon float64) (*Forecast, error)
}

type geocoder interface {
	Search(city string) *geo.Place
	Reverse(lat, lon float64) string
}

type Service struct {
	provider forecastProvider
	geocoder geocoder
	now      func() time.Time
}

func NewService(provider forecastProvider, geocoder geocoder) *Service {
	return &Service{provider: provider, geocoder: geocoder, now: time.Now}
}

// Report builds the normalized weather view for the given coordinates. A
// non-empty city is forward geocoded first and overrides the coordinates;
// geocoding failures are swallowed and the caller's coordinates kept. Only a
// failed or malformed provider fetch returns an error, so the handler can
// substitute its offline snapshot.
func (s *Service) Report(lat, lon float64, city string) (*model.WeatherReport, error) {
	label := "Your Location"
	resolved := false

	if city != "" {
		if place := s.geocoder.Search(city); place != nil {
			lat, lon = place.Lat, place.Lon
			label = place.Name
			resolved = true
		}
	}

	fc, err := s.provider.Fetch(lat, lon)
	if err != nil {
		return nil, err
	}

	if !resolved {
		if name := s.geocoder.Reverse(lat, lon); name != "" {
			label = name
			resolved = name != "Unknown Location"
		}
	}

	report := &model.WeatherReport{
		Current: model.CurrentConditions{
			Temperature: round1(fc.Temperature),
			Condition:   currentCondition(fc.WeatherCode),
			Humidity:    int(math.Round(fc.Humidity)),
			WindSpeed:   round1(fc.WindSpeed),
			Location:    label + " (Live)",
		},
		Alerts:           alertsFor(fc),
		SmartTip:         smartTip(fc),
		Forecast:         forecastEntries(fc, s.now()),
		LocationResolved: resolved,
	}

	return report, nil
}

func alertsFor(fc *Forecast) []model.Alert {
	var alerts []model.Alert

	if fc.WindSpeed > windAlertThreshold {
		alerts = append(alerts, model.Alert{
			Type: model.AlertWarning,
			Text: fmt.Sprintf("⚠️ Wind Speed Alert: > %dkm/h", int(fc.WindSpeed)),
		})
	}

	if precipitationToday(fc) > rainAlertThresholdMM {
		alerts = append(alerts, model.Alert{
			Type: model.AlertDanger,
			Text: "🚨 Heavy Rainfall Prediction (Next 24h)",
		})
	}

	return alerts
}

// smartTip picks a single advisory: predicted heavy rain outranks high wind.
func smartTip(fc *Forecast) string {
	if precipitationToday(fc) > rainAlertThresholdMM {
		return rainTip
	}
	if fc.WindSpeed > windAlertThreshold {
		return windTip
	}
	return ""
}

func precipitationToday(fc *Forecast) float64 {
	if len(fc.DailyPrecip) == 0 {
		return 0
	}
	return fc.DailyPrecip[0]
}

// forecastEntries renders up to five daily entries, wrapping day labels
// around the week starting from the current weekday.
func forecastEntries(fc *Forecast, now time.Time) []model.ForecastDay {
	// time.Weekday starts on Sunday; the label sequence starts on Monday.
	todayIdx := (int(now.Weekday()) + 6) % 7

	entries := make([]model.ForecastDay, 0, forecastDays)
	for i := 0; i < forecastDays && i < len(fc.DailyCodes); i++ {
		maxTemp := ""
		if i < len(fc.DailyMaxTemps) {
			maxTemp = fmt.Sprintf("%.1f", fc.DailyMaxTemps[i])
		}

		entries = append(entries, model.ForecastDay{
			Day:       dayNames[(todayIdx+i)%7],
			MaxTemp:   maxTemp,
			Condition: forecastCondition(fc.DailyCodes[i]),
		})
	}

	return entries
}

func currentCondition(code int) string {
	if cond, ok := conditionByCode[code]; ok {
		return cond
	}
	return "Clear"
}

func forecastCondition(code int) string {
	if cond, ok := conditionByCode[code]; ok {
		return cond
	}
	return "Sunny"
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
