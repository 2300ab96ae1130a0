package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultWeatherURL = "https://api.weatherapi.com/v1/current.json"

// Weather fetches current conditions for a location from weatherapi.com.
type Weather struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewWeather returns the weather lookup capability.
func NewWeather(apiKey string) *Weather {
	return &Weather{
		apiKey:  apiKey,
		baseURL: defaultWeatherURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Weather) Name() string {
	return "get_weather"
}

func (w *Weather) Description() string {
	return "Retrieve weather information for a specific location.\n" +
		"Example:\n" +
		"Action: get_weather: Tokyo"
}

type weatherResponse struct {
	Current *struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

func (w *Weather) Call(ctx context.Context, location string) (string, error) {
	q := url.Values{}
	q.Set("key", w.apiKey)
	q.Set("q", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building weather request: %w", err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting weather data: %w", err)
	}
	defer resp.Body.Close()

	var data weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("decoding weather response: %w", err)
	}
	if data.Current == nil {
		return "Weather information not found.", nil
	}
	return fmt.Sprintf("The current temperature in %s is %.1f°C with %s.",
		location, data.Current.TempC, data.Current.Condition.Text), nil
}
