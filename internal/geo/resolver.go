// Package geo resolves browser-provided coordinates to a country and city.
// Lookup failure is never an error to callers: the assessment proceeds with
// whatever location detail is available, possibly none.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"assessment-service/internal/models"
)

const defaultEndpoint = "https://api.bigdatacloud.net/data/reverse-geocode-client"

type Resolver struct {
	endpoint string
	http     *http.Client
}

func NewResolver() *Resolver {
	return NewResolverWithEndpoint(defaultEndpoint)
}

func NewResolverWithEndpoint(endpoint string) *Resolver {
	return &Resolver{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Reverse turns coordinates into a location. On any lookup failure the bare
// coordinates are returned, so the caller still records where the session
// ran from.
func (r *Resolver) Reverse(ctx context.Context, latitude, longitude float64) *models.Location {
	location := &models.Location{Latitude: latitude, Longitude: longitude}

	url := fmt.Sprintf("%s?latitude=%f&longitude=%f", r.endpoint, latitude, longitude)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return location
	}
	resp, err := r.http.Do(req)
	if err != nil {
		log.Printf("Reverse geocode lookup failed: %v", err)
		return location
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return location
	}

	var payload struct {
		CountryName string `json:"countryName"`
		City        string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return location
	}
	location.Country = payload.CountryName
	location.City = payload.City
	return location
}
