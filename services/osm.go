package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/SAI-KARTHIK999/SkinSey/middleware"
)

const (
	defaultOverpassURL  = "https://overpass-api.de/api/interpreter"
	defaultNominatimURL = "https://nominatim.openstreetmap.org"
)

// GeoClient talks to the OpenStreetMap Overpass and Nominatim endpoints.
type GeoClient struct {
	OverpassURL  string
	NominatimURL string
	HTTPClient   *http.Client
}

func NewGeoClient() *GeoClient {
	return &GeoClient{
		OverpassURL:  defaultOverpassURL,
		NominatimURL: defaultNominatimURL,
		HTTPClient:   ExternalHTTPClient,
	}
}

// OverpassElement is one POI returned by an Overpass query. Ways and
// relations carry their coordinates in Center.
type OverpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *OverpassCenter   `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

type OverpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassResponse struct {
	Elements []OverpassElement `json:"elements"`
}

// SearchHealthcarePOIs queries healthcare facilities around a point, from
// dermatologist-specific tags down to generic healthcare, within radius
// meters.
func (c *GeoClient) SearchHealthcarePOIs(ctx context.Context, lat, lng float64, radius int) ([]OverpassElement, error) {
	query := fmt.Sprintf(`
		[out:json][timeout:30];
		(
		  node["healthcare"="dermatologist"](around:%[1]d,%[2]f,%[3]f);
		  way["healthcare"="dermatologist"](around:%[1]d,%[2]f,%[3]f);
		  relation["healthcare"="dermatologist"](around:%[1]d,%[2]f,%[3]f);
		  node["amenity"="clinic"]["healthcare"](around:%[1]d,%[2]f,%[3]f);
		  way["amenity"="clinic"]["healthcare"](around:%[1]d,%[2]f,%[3]f);
		  node["amenity"="hospital"]["healthcare"](around:%[1]d,%[2]f,%[3]f);
		  way["amenity"="hospital"]["healthcare"](around:%[1]d,%[2]f,%[3]f);
		  node["healthcare"](around:%[1]d,%[2]f,%[3]f);
		  way["healthcare"](around:%[1]d,%[2]f,%[3]f);
		);
		out center;
	`, radius, lat, lng)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.OverpassURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		middleware.TrackProviderCall("overpass", "error")
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		middleware.TrackProviderCall("overpass", "error")
		return nil, fmt.Errorf("overpass returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		middleware.TrackProviderCall("overpass", "error")
		return nil, err
	}

	var parsed overpassResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		middleware.TrackProviderCall("overpass", "error")
		return nil, fmt.Errorf("overpass response decode failed: %w", err)
	}

	middleware.TrackProviderCall("overpass", "ok")
	return parsed.Elements, nil
}

// Address is the subset of a Nominatim reverse-geocoding result the app
// consumes.
type Address struct {
	Street  string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type nominatimResponse struct {
	Address struct {
		HouseNumber string `json:"house_number"`
		Road        string `json:"road"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Postcode    string `json:"postcode"`
		Country     string `json:"country"`
	} `json:"address"`
}

// ReverseGeocode maps coordinates to a postal address.
func (c *GeoClient) ReverseGeocode(ctx context.Context, lat, lon float64) (*Address, error) {
	reqURL := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f&zoom=18&addressdetails=1",
		c.NominatimURL, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		middleware.TrackProviderCall("nominatim", "error")
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		middleware.TrackProviderCall("nominatim", "error")
		return nil, fmt.Errorf("nominatim returned %d", resp.StatusCode)
	}

	var parsed nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		middleware.TrackProviderCall("nominatim", "error")
		return nil, fmt.Errorf("nominatim response decode failed: %w", err)
	}

	city := parsed.Address.City
	if city == "" {
		city = parsed.Address.Town
	}
	if city == "" {
		city = parsed.Address.Village
	}

	middleware.TrackProviderCall("nominatim", "ok")
	return &Address{
		Street:  strings.TrimSpace(parsed.Address.HouseNumber + " " + parsed.Address.Road),
		City:    city,
		State:   parsed.Address.State,
		ZipCode: parsed.Address.Postcode,
		Country: parsed.Address.Country,
	}, nil
}
