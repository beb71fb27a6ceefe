package weather

import (
	"encoding/json"
	"fmt"
	"strings"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

type fetcher interface {
	Get(url string) ([]byte, error)
}

// Forecast carries the subset of Open-Meteo data the aggregator consumes.
type Forecast struct {
	Temperature   float64
	Humidity      float64
	WeatherCode   int
	WindSpeed     float64
	DailyCodes    []int
	DailyMaxTemps []float64
	DailyPrecip   []float64
}

type OpenMeteoClient struct {
	baseURL string
	fetcher fetcher
}

func NewOpenMeteoClient(f fetcher) *OpenMeteoClient {
	return &OpenMeteoClient{baseURL: defaultBaseURL, fetcher: f}
}

func (c *OpenMeteoClient) Fetch(lat, lon float64) (*Forecast, error) {
	current := strings.Join([]string{
		"temperature_2m", "relative_humidity_2m", "weather_code", "wind_speed_10m",
	}, ",")
	daily := strings.Join([]string{
		"weather_code", "temperature_2m_max", "precipitation_sum",
	}, ",")

	url := fmt.Sprintf(
		"%s?latitude=%g&longitude=%g&current=%s&daily=%s&timezone=auto",
		c.baseURL, lat, lon, current, daily,
	)

	body, err := c.fetcher.Get(url)
	if err != nil {
		return nil, fmt.Errorf("open-meteo fetch: %w", err)
	}

	var raw openMeteoResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("open-meteo decode: %w", err)
	}

	if len(raw.Daily.WeatherCode) == 0 {
		return nil, fmt.Errorf("open-meteo response carries no daily series")
	}

	return &Forecast{
		Temperature:   raw.Current.Temperature,
		Humidity:      raw.Current.Humidity,
		WeatherCode:   raw.Current.WeatherCode,
		WindSpeed:     raw.Current.WindSpeed,
		DailyCodes:    raw.Daily.WeatherCode,
		DailyMaxTemps: raw.Daily.TemperatureMax,
		DailyPrecip:   raw.Daily.PrecipitationSum,
	}, nil
}

type openMeteoResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily struct {
		WeatherCode      []int     `json:"weather_code"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}
