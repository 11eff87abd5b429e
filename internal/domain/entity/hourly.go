package entity

import "time"

// Hourly is one hour of the forecast. All quantities are canonical units:
// °C, m/s, hPa, m, percent.
type Hourly struct {
	Time                     time.Time                 `json:"time"`
	IsDaylight               *bool                     `json:"isDaylight,omitempty"`
	WeatherCode              *WeatherCode              `json:"weatherCode,omitempty"`
	WeatherText              *string                   `json:"weatherText,omitempty"`
	Temperature              *Temperature              `json:"temperature,omitempty"`
	Precipitation            *Precipitation            `json:"precipitation,omitempty"`
	PrecipitationProbability *PrecipitationProbability `json:"precipitationProbability,omitempty"`
	Wind                     *Wind                     `json:"wind,omitempty"`
	AirQuality               *AirQuality               `json:"airQuality,omitempty"`
	UV                       *UV                       `json:"uv,omitempty"`
	RelativeHumidity         *float64                  `json:"relativeHumidity,omitempty"`
	DewPoint                 *float64                  `json:"dewPoint,omitempty"`
	Pressure                 *float64                  `json:"pressure,omitempty"`
	CloudCover               *int                      `json:"cloudCover,omitempty"`
	Visibility               *float64                  `json:"visibility,omitempty"`
}
