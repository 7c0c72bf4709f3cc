package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBoundariesURL serves one polygon feature per U.S. state.
const DefaultBoundariesURL = "https://raw.githubusercontent.com/PublicaMundi/MappingAPI/master/data/geojson/us-states.json"

// FetchBoundaries downloads the boundary FeatureCollection. It runs once at
// startup; a failure here is fatal to the caller since the map has no
// fallback source.
func FetchBoundaries(url string) (*FeatureCollection, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("boundary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("failed to download boundary data: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary response: %w", err)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(bodyBytes, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse boundary JSON: %w", err)
	}
	return &fc, nil
}
