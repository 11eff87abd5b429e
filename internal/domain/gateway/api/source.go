package api

import (
	"context"
	"fmt"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
)

// WeatherSource is one external weather provider. Implementations perform
// transport and delegate payload mapping to their pure converter functions.
type WeatherSource interface {
	ID() string
	Name() string

	// SupportedFeatures declares which features the source can serve at all.
	SupportedFeatures() []entity.Feature

	// IsFeatureSupportedForLocation narrows SupportedFeatures per location;
	// some sources only cover certain territories.
	IsFeatureSupportedForLocation(loc entity.Location, feature entity.Feature) bool

	// NeedsLocationParametersRefresh reports whether the source must resolve
	// location parameters before the given features can be fetched.
	NeedsLocationParametersRefresh(loc entity.Location, coordinatesChanged bool, features []entity.Feature) bool

	// ResolveLocationParameters resolves provider-specific identifiers for
	// the coordinates, such as a grid point or a location key.
	ResolveLocationParameters(ctx context.Context, loc entity.Location) (map[string]string, error)

	// Fetch retrieves and converts one feature's data for the location.
	Fetch(ctx context.Context, loc entity.Location, feature entity.Feature) (*model.WeatherWrapper, error)
}

// ReverseGeocodingSource is implemented by sources that can name
// coordinates.
type ReverseGeocodingSource interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (*model.Place, error)
}

// Registry holds the registered sources and resolves which single source
// serves a feature for a location.
type Registry struct {
	sources  map[string]WeatherSource
	priority []string
}

// NewRegistry builds a registry. Registration order is the capability
// priority used when a location has no configured source for a feature.
func NewRegistry(sources ...WeatherSource) *Registry {
	registry := &Registry{sources: make(map[string]WeatherSource, len(sources))}
	for _, source := range sources {
		registry.sources[source.ID()] = source
		registry.priority = append(registry.priority, source.ID())
	}
	return registry
}

// Source returns a source by id.
func (r *Registry) Source(id string) (WeatherSource, bool) {
	source, ok := r.sources[id]
	return source, ok
}

// ResolveSource picks the source serving a feature for the location: the
// location's configured source when set and capable, otherwise the first
// capable source in priority order.
func (r *Registry) ResolveSource(loc entity.Location, feature entity.Feature) (WeatherSource, error) {
	if configured, ok := loc.FeatureSources[feature]; ok {
		source, exists := r.sources[configured]
		if exists && supports(source, loc, feature) {
			return source, nil
		}
		return nil, fmt.Errorf("%w: configured source %q cannot serve %s", model.ErrUnsupportedFeature, configured, feature)
	}
	for _, id := range r.priority {
		if source := r.sources[id]; supports(source, loc, feature) {
			return source, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrUnsupportedFeature, feature)
}

// SourcesNeedingParameters returns the sources among those serving the
// requested features that want a parameter refresh first.
func (r *Registry) SourcesNeedingParameters(loc entity.Location, coordinatesChanged bool, features []entity.Feature) []WeatherSource {
	perSource := make(map[string][]entity.Feature)
	for _, feature := range features {
		source, err := r.ResolveSource(loc, feature)
		if err != nil {
			continue
		}
		perSource[source.ID()] = append(perSource[source.ID()], feature)
	}

	var needing []WeatherSource
	for _, id := range r.priority {
		features, ok := perSource[id]
		if !ok {
			continue
		}
		source := r.sources[id]
		if source.NeedsLocationParametersRefresh(loc, coordinatesChanged, features) {
			needing = append(needing, source)
		}
	}
	return needing
}

func supports(source WeatherSource, loc entity.Location, feature entity.Feature) bool {
	for _, supported := range source.SupportedFeatures() {
		if supported == feature {
			return source.IsFeatureSupportedForLocation(loc, feature)
		}
	}
	return false
}
