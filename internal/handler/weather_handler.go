package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agroworld/internal/model"
	"agroworld/pkg/weather"
)

type WeatherService interface {
	Report(lat, lon float64, city string) (*model.WeatherReport, error)
}

type WeatherHandler struct {
	service WeatherService
}

func NewWeatherHandler(service WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// GetWeather serves the forecast view. The aggregator swallows every
// upstream problem except a failed weather fetch; that one case falls back
// to a fixed offline snapshot instead of an error status.
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	lat := getQueryFloat("lat", weather.DefaultLat, c)
	lon := getQueryFloat("lon", weather.DefaultLon, c)
	city := c.Query("city")

	report, err := h.service.Report(lat, lon, city)
	if err != nil {
		slog.Error("error building weather report", "error", err, "lat", lat, "lon", lon)
		c.JSON(http.StatusOK, offlineWeatherResponse())
		return
	}

	c.JSON(http.StatusOK, toWeatherResponse(report))
}

func toWeatherResponse(report *model.WeatherReport) WeatherResponse {
	alerts := make([]AlertResponse, 0, len(report.Alerts))
	for _, a := range report.Alerts {
		alerts = append(alerts, AlertResponse{Type: a.Type, Text: a.Text})
	}

	forecast := make([]ForecastDayResponse, 0, len(report.Forecast))
	for _, day := range report.Forecast {
		forecast = append(forecast, ForecastDayResponse{
			Day:  day.Day,
			Temp: day.MaxTemp,
			Cond: day.Condition,
		})
	}

	return WeatherResponse{
		Current: CurrentConditionsResponse{
			Temp:      report.Current.Temperature,
			Condition: report.Current.Condition,
			Humidity:  report.Current.Humidity,
			Wind:      report.Current.WindSpeed,
			Location:  report.Current.Location,
		},
		Alerts:           alerts,
		SmartTip:         report.SmartTip,
		Forecast:         forecast,
		Source:           "live",
		LocationResolved: report.LocationResolved,
	}
}

func offlineWeatherResponse() WeatherResponse {
	return WeatherResponse{
		Current: CurrentConditionsResponse{
			Temp:      28,
			Condition: "Sunny",
			Location:  "Nagpur (Offline)",
		},
		Alerts:   []AlertResponse{},
		Forecast: []ForecastDayResponse{},
		Source:   "offline",
	}
}

func getQueryFloat(name string, defaultValue float64, c *gin.Context) float64 {
	param := c.Query(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(param, 64)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return value
}
