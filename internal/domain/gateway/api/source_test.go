package api

import (
	"context"
	"errors"
	"testing"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
)

type stubSource struct {
	id          string
	features    []entity.Feature
	usOnly      bool
	needsParams bool
}

func (s *stubSource) ID() string                          { return s.id }
func (s *stubSource) Name() string                        { return s.id }
func (s *stubSource) SupportedFeatures() []entity.Feature { return s.features }

func (s *stubSource) IsFeatureSupportedForLocation(loc entity.Location, _ entity.Feature) bool {
	if s.usOnly {
		return loc.Country == "United States"
	}
	return true
}

func (s *stubSource) NeedsLocationParametersRefresh(entity.Location, bool, []entity.Feature) bool {
	return s.needsParams
}

func (s *stubSource) ResolveLocationParameters(context.Context, entity.Location) (map[string]string, error) {
	return nil, nil
}

func (s *stubSource) Fetch(context.Context, entity.Location, entity.Feature) (*model.WeatherWrapper, error) {
	return nil, nil
}

func TestResolveSourcePriorityOrder(t *testing.T) {
	first := &stubSource{id: "first", features: []entity.Feature{entity.FeatureForecast}}
	second := &stubSource{id: "second", features: []entity.Feature{entity.FeatureForecast, entity.FeatureAlert}}
	registry := NewRegistry(first, second)

	loc := entity.Location{ID: "loc-1"}

	source, err := registry.ResolveSource(loc, entity.FeatureForecast)
	if err != nil {
		t.Fatalf("ResolveSource(forecast) error = %v", err)
	}
	if source.ID() != "first" {
		t.Errorf("forecast source = %s, want first in registration order", source.ID())
	}

	source, err = registry.ResolveSource(loc, entity.FeatureAlert)
	if err != nil {
		t.Fatalf("ResolveSource(alert) error = %v", err)
	}
	if source.ID() != "second" {
		t.Errorf("alert source = %s, want the only capable source", source.ID())
	}

	if _, err := registry.ResolveSource(loc, entity.FeatureNormals); !errors.Is(err, model.ErrUnsupportedFeature) {
		t.Errorf("ResolveSource(normals) error = %v, want ErrUnsupportedFeature", err)
	}
}

func TestResolveSourceConfiguredPin(t *testing.T) {
	first := &stubSource{id: "first", features: []entity.Feature{entity.FeatureForecast}}
	second := &stubSource{id: "second", features: []entity.Feature{entity.FeatureForecast}}
	registry := NewRegistry(first, second)

	loc := entity.Location{
		ID:             "loc-1",
		FeatureSources: map[entity.Feature]string{entity.FeatureForecast: "second"},
	}

	source, err := registry.ResolveSource(loc, entity.FeatureForecast)
	if err != nil {
		t.Fatalf("ResolveSource() error = %v", err)
	}
	if source.ID() != "second" {
		t.Errorf("source = %s, want the configured pin", source.ID())
	}

	// A pin naming an incapable source fails rather than falling back.
	loc.FeatureSources[entity.FeatureForecast] = "missing"
	if _, err := registry.ResolveSource(loc, entity.FeatureForecast); !errors.Is(err, model.ErrUnsupportedFeature) {
		t.Errorf("pinned missing source error = %v, want ErrUnsupportedFeature", err)
	}
}

func TestResolveSourceLocationCoverage(t *testing.T) {
	national := &stubSource{id: "national", features: []entity.Feature{entity.FeatureForecast}, usOnly: true}
	global := &stubSource{id: "global", features: []entity.Feature{entity.FeatureForecast}}
	registry := NewRegistry(national, global)

	inside := entity.Location{ID: "loc-1", Country: "United States"}
	outside := entity.Location{ID: "loc-2", Country: "France"}

	source, err := registry.ResolveSource(inside, entity.FeatureForecast)
	if err != nil {
		t.Fatalf("ResolveSource(inside) error = %v", err)
	}
	if source.ID() != "national" {
		t.Errorf("inside coverage source = %s, want national", source.ID())
	}

	source, err = registry.ResolveSource(outside, entity.FeatureForecast)
	if err != nil {
		t.Fatalf("ResolveSource(outside) error = %v", err)
	}
	if source.ID() != "global" {
		t.Errorf("outside coverage source = %s, want global fallback", source.ID())
	}
}

func TestSourcesNeedingParameters(t *testing.T) {
	keyed := &stubSource{id: "keyed", features: []entity.Feature{entity.FeatureForecast}, needsParams: true}
	plain := &stubSource{id: "plain", features: []entity.Feature{entity.FeatureAlert}}
	registry := NewRegistry(keyed, plain)

	loc := entity.Location{ID: "loc-1"}
	features := []entity.Feature{entity.FeatureForecast, entity.FeatureAlert}

	needing := registry.SourcesNeedingParameters(loc, false, features)
	if len(needing) != 1 || needing[0].ID() != "keyed" {
		t.Errorf("needing = %v, want only the keyed source", needing)
	}

	// Sources not serving any requested feature never appear.
	needing = registry.SourcesNeedingParameters(loc, false, []entity.Feature{entity.FeatureAlert})
	if len(needing) != 0 {
		t.Errorf("needing = %v, want none", needing)
	}
}
