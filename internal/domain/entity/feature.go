package entity

// Feature is one independently-requestable kind of weather data.
type Feature string

const (
	FeatureForecast         Feature = "FORECAST"
	FeatureCurrent          Feature = "CURRENT"
	FeatureAirQuality       Feature = "AIR_QUALITY"
	FeaturePollen           Feature = "POLLEN"
	FeatureMinutely         Feature = "MINUTELY"
	FeatureAlert            Feature = "ALERT"
	FeatureNormals          Feature = "NORMALS"
	FeatureReverseGeocoding Feature = "REVERSE_GEOCODING"
)

// AllFeatures returns every requestable feature in a stable order.
func AllFeatures() []Feature {
	return []Feature{
		FeatureForecast,
		FeatureCurrent,
		FeatureAirQuality,
		FeaturePollen,
		FeatureMinutely,
		FeatureAlert,
		FeatureNormals,
		FeatureReverseGeocoding,
	}
}
