package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearchHealthcarePOIs(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("bad form: %v", err)
		}
		query := r.Form.Get("data")
		if !strings.Contains(query, `"healthcare"="dermatologist"`) {
			t.Error("dermatologist tier missing from query")
		}
		if !strings.Contains(query, "around:100000,40.000000,-74.000000") {
			t.Errorf("radius/coords missing from query: %s", query)
		}
		if !strings.Contains(query, "out center") {
			t.Error("query must request way/relation centers")
		}

		w.Write([]byte(`{"elements":[
			{"type":"node","id":1,"lat":40.1,"lon":-74.1,"tags":{"name":"Skin Clinic"}},
			{"type":"way","id":2,"center":{"lat":40.2,"lon":-74.2},"tags":{"name":"Hospital"}}
		]}`))
	}))
	defer server.Close()

	client := &GeoClient{OverpassURL: server.URL, HTTPClient: http.DefaultClient}
	elements, err := client.SearchHealthcarePOIs(ctx, 40.0, -74.0, 100000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elements))
	}
	if elements[0].Tags["name"] != "Skin Clinic" {
		t.Errorf("first element tags = %v", elements[0].Tags)
	}
	if elements[1].Center == nil || elements[1].Center.Lat != 40.2 {
		t.Errorf("way center not decoded: %+v", elements[1])
	}
}

func TestReverseGeocode(t *testing.T) {
	ctx := context.Background()

	t.Run("city falls back through town and village", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"address":{
				"house_number":"12","road":"High Street",
				"town":"Smalltown","state":"CA","postcode":"90210","country":"USA"
			}}`))
		}))
		defer server.Close()

		client := &GeoClient{NominatimURL: server.URL, HTTPClient: http.DefaultClient}
		addr, err := client.ReverseGeocode(ctx, 34.0, -118.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if addr.Street != "12 High Street" {
			t.Errorf("street = %q", addr.Street)
		}
		if addr.City != "Smalltown" {
			t.Errorf("city = %q, want town fallback", addr.City)
		}
		if addr.ZipCode != "90210" {
			t.Errorf("zip = %q", addr.ZipCode)
		}
	})

	t.Run("provider failure surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := &GeoClient{NominatimURL: server.URL, HTTPClient: http.DefaultClient}
		if _, err := client.ReverseGeocode(ctx, 0, 0); err == nil {
			t.Fatal("expected error")
		}
	})
}
