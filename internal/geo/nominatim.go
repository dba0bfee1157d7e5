package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"biomonitor/internal/models"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// resultLimit matches the map widget's cap on returned facilities.
const resultLimit = 20

// Client looks up medical facilities through the Nominatim geocoding API.
type Client struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
}

// SearchOptions bias a facility search around a location. Radius is in
// kilometers and only applies when Latitude/Longitude are set.
type SearchOptions struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
	Class       string `json:"class"`
}

func NewClient() *Client {
	baseURL := os.Getenv("NOMINATIM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	countryCode := os.Getenv("NOMINATIM_COUNTRY_CODE")
	if countryCode == "" {
		countryCode = "BO"
	}

	return &Client{
		baseURL:     baseURL,
		countryCode: countryCode,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SearchMedicalCenters runs a free-text facility search, optionally bounded
// to a box around the given location.
func (c *Client) SearchMedicalCenters(ctx context.Context, query string, opts *SearchOptions) ([]models.MedicalCenter, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("countrycodes", c.countryCode)
	params.Set("limit", strconv.Itoa(resultLimit))
	params.Set("addressdetails", "1")
	params.Set("extratags", "1")
	params.Set("dedupe", "1")
	params.Set("q", query)

	if opts != nil && opts.RadiusKm > 0 {
		// Roughly convert km to degrees; precision does not matter for a
		// search bias box.
		delta := opts.RadiusKm / 111.0
		viewbox := fmt.Sprintf("%f,%f,%f,%f",
			opts.Longitude-delta, opts.Latitude+delta,
			opts.Longitude+delta, opts.Latitude-delta,
		)
		params.Set("viewbox", viewbox)
		params.Set("bounded", "1")
	}

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim usage policy requires an identifying user agent
	req.Header.Set("User-Agent", "biomonitor/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query Nominatim: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Nominatim returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode Nominatim response: %w", err)
	}

	centers := make([]models.MedicalCenter, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			continue
		}
		centers = append(centers, models.MedicalCenter{
			Name:      r.DisplayName,
			Type:      facilityType(r.Class, r.Type),
			Latitude:  lat,
			Longitude: lon,
			Address:   r.DisplayName,
		})
	}
	return centers, nil
}

// facilityType normalizes Nominatim's class/type pair to the facility kinds
// the map distinguishes.
func facilityType(class, typ string) string {
	if class != "amenity" && class != "healthcare" {
		return typ
	}
	switch typ {
	case "hospital", "clinic", "doctors", "pharmacy":
		return typ
	default:
		return "medical"
	}
}
