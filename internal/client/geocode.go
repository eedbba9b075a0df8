package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
	ErrTooManyRequests     = errors.New("geocoder rate limit exceeded")
	ErrAddressNotFound     = errors.New("address not found")
)

// GeocodeResponse - ответ обратного геокодера (Nominatim)
type GeocodeResponse struct {
	DisplayName string `json:"display_name"`
}

// GeocodeClient - клиент обратного геокодирования для автозаполнения адреса
type GeocodeClient struct {
	baseURL    string
	httpClient HTTPClient
}

func NewGeocodeClient(baseURL string, client HTTPClient) *GeocodeClient {
	return &GeocodeClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Reverse - поиск адреса по координатам
func (c *GeocodeClient) Reverse(ctx context.Context, lat float64, lon float64) (string, error) {
	url := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", c.baseURL, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	// требование политики Nominatim
	req.Header.Set("User-Agent", "laundryfront/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrTooManyRequests
	}
	if resp.StatusCode != http.StatusOK {
		return "", ErrGeocoderUnavailable
	}

	var result GeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", ErrAddressNotFound
	}
	return result.DisplayName, nil
}
