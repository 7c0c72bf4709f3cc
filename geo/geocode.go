package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultGeocoderURL is the Nominatim search endpoint.
const DefaultGeocoderURL = "https://nominatim.openstreetmap.org/search"

// Location is a geocoded point. The zero value is the Unknown sentinel used
// when geocoding failed for a state.
type Location struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Known bool    `json:"known"`
}

// Unknown marks a state whose location could not be resolved.
var Unknown = Location{}

// Geocoder resolves state names to locations through a Nominatim endpoint.
// Results are cached per name for the process lifetime (no eviction) and
// persisted to the data dir so restarts skip the network entirely.
type Geocoder struct {
	baseURL string
	client  *http.Client
	cache   map[string]Location
	dataDir string
}

// NewGeocoder creates a geocoder with a request timeout, so a dead endpoint
// cannot hang startup indefinitely.
func NewGeocoder(baseURL, dataDir string) *Geocoder {
	g := &Geocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   make(map[string]Location),
		dataDir: dataDir,
	}
	g.loadCache()
	return g
}

// Geocode resolves one state name. Any internal failure (transport error,
// bad status, empty or malformed result) is logged once and converted to
// Unknown; it never propagates to the caller. Unknown results are cached
// too: a name that failed once stays failed for the process lifetime.
func (g *Geocoder) Geocode(state string) Location {
	if loc, ok := g.cache[state]; ok {
		return loc
	}

	loc, err := g.lookup(state)
	if err != nil {
		log.Printf("Error geocoding %s: %v", state, err)
		loc = Unknown
	}
	g.cache[state] = loc
	return loc
}

func (g *Geocoder) lookup(state string) (Location, error) {
	params := url.Values{}
	params.Set("q", state+", USA")
	params.Set("format", "json")
	params.Set("limit", "1")

	resp, err := g.client.Get(g.baseURL + "?" + params.Encode())
	if err != nil {
		return Unknown, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return Unknown, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read geocoder response: %w", err)
	}

	// Nominatim encodes coordinates as strings.
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.Unmarshal(bodyBytes, &results); err != nil {
		return Unknown, fmt.Errorf("failed to parse geocoder JSON: %w", err)
	}
	if len(results) == 0 {
		return Unknown, fmt.Errorf("no match for %q", state)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Unknown, fmt.Errorf("bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Unknown, fmt.Errorf("bad longitude %q: %w", results[0].Lon, err)
	}

	return Location{Lat: lat, Lon: lon, Known: true}, nil
}

// Locations returns a copy of every cached result.
func (g *Geocoder) Locations() map[string]Location {
	out := make(map[string]Location, len(g.cache))
	for name, loc := range g.cache {
		out[name] = loc
	}
	return out
}

type geocodeCache struct {
	Timestamp int64               `json:"timestamp"`
	Locations map[string]Location `json:"locations"`
}

func (g *Geocoder) cacheFile() string {
	return filepath.Join(g.dataDir, "geocode_cache.json")
}

func (g *Geocoder) loadCache() {
	if g.dataDir == "" {
		return
	}
	data, err := os.ReadFile(g.cacheFile())
	if err != nil {
		return
	}

	var cache geocodeCache
	if err := json.Unmarshal(data, &cache); err != nil {
		log.Printf("Failed to parse geocode cache, refetching: %v", err)
		return
	}
	for name, loc := range cache.Locations {
		g.cache[name] = loc
	}
}

// SaveCache writes the cached locations to the data dir.
func (g *Geocoder) SaveCache() error {
	if g.dataDir == "" {
		return nil
	}
	cache := geocodeCache{
		Timestamp: time.Now().Unix(),
		Locations: g.cache,
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal geocode cache: %w", err)
	}
	if err := os.WriteFile(g.cacheFile(), data, 0644); err != nil {
		return fmt.Errorf("failed to write geocode cache: %w", err)
	}
	return nil
}
