package weather

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

type fakeFetcher struct {
	body    []byte
	err     error
	lastURL string
}

func (f *fakeFetcher) Get(url string) ([]byte, error) {
	f.lastURL = url
	return f.body, f.err
}

func TestOpenMeteoFetch(t *testing.T) {
	payload := `{
		"current": {
			"temperature_2m": 27.3,
			"relative_humidity_2m": 65,
			"weather_code": 2,
			"wind_speed_10m": 11.4
		},
		"daily": {
			"weather_code": [2, 3, 61, 0, 1],
			"temperature_2m_max": [31.2, 30.1, 28.4, 32.0, 31.7],
			"precipitation_sum": [0.0, 1.2, 14.5, 0.0, 0.0]
		}
	}`

	f := &fakeFetcher{body: []byte(payload)}
	client := &OpenMeteoClient{baseURL: defaultBaseURL, fetcher: f}

	fc, err := client.Fetch(21.1458, 79.0882)

	assert.Equal(t, nil, err)
	assert.Equal(t, 27.3, fc.Temperature)
	assert.Equal(t, 65.0, fc.Humidity)
	assert.Equal(t, 2, fc.WeatherCode)
	assert.Equal(t, 11.4, fc.WindSpeed)
	assert.Equal(t, []int{2, 3, 61, 0, 1}, fc.DailyCodes)
	assert.Equal(t, 14.5, fc.DailyPrecip[2])
}

func TestOpenMeteoFetch_RequestShape(t *testing.T) {
	f := &fakeFetcher{err: errors.New("offline")}
	client := NewOpenMeteoClient(f)

	_, err := client.Fetch(21.1458, 79.0882)

	assert.NotEqual(t, nil, err)
	assert.MatchRegex(t, f.lastURL, `latitude=21\.1458`)
	assert.MatchRegex(t, f.lastURL, `longitude=79\.0882`)
	assert.MatchRegex(t, f.lastURL, `current=temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m`)
	assert.MatchRegex(t, f.lastURL, `daily=weather_code,temperature_2m_max,precipitation_sum`)
	assert.MatchRegex(t, f.lastURL, `timezone=auto`)
}

func TestOpenMeteoFetch_MalformedPayload(t *testing.T) {
	f := &fakeFetcher{body: []byte("<html>rate limited</html>")}
	client := NewOpenMeteoClient(f)

	_, err := client.Fetch(21.1458, 79.0882)
	assert.NotEqual(t, nil, err)
}

func TestOpenMeteoFetch_MissingDailySeries(t *testing.T) {
	f := &fakeFetcher{body: []byte(`{"current": {"temperature_2m": 27.3}}`)}
	client := NewOpenMeteoClient(f)

	_, err := client.Fetch(21.1458, 79.0882)
	assert.NotEqual(t, nil, err)
}
