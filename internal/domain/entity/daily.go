package entity

import "time"

// Astro holds the rise and set instants of the sun or moon for one day.
type Astro struct {
	RiseTime *time.Time `json:"riseTime,omitempty"`
	SetTime  *time.Time `json:"setTime,omitempty"`
}

// IsValid reports whether both instants are present.
func (a Astro) IsValid() bool {
	return a.RiseTime != nil && a.SetTime != nil
}

// HalfDay is the day or night portion of one calendar day's forecast.
type HalfDay struct {
	WeatherCode              *WeatherCode              `json:"weatherCode,omitempty"`
	WeatherPhrase            *string                   `json:"weatherPhrase,omitempty"`
	WeatherText              *string                   `json:"weatherText,omitempty"`
	Temperature              *Temperature              `json:"temperature,omitempty"`
	Precipitation            *Precipitation            `json:"precipitation,omitempty"`
	PrecipitationProbability *PrecipitationProbability `json:"precipitationProbability,omitempty"`
	PrecipitationDuration    *PrecipitationDuration    `json:"precipitationDuration,omitempty"`
	Wind                     *Wind                     `json:"wind,omitempty"`
	CloudCover               *int                      `json:"cloudCover,omitempty"`
}

// Daily is one calendar day of the forecast. Date marks local midnight.
type Daily struct {
	Date       time.Time   `json:"date"`
	Day        *HalfDay    `json:"day,omitempty"`
	Night      *HalfDay    `json:"night,omitempty"`
	Sun        *Astro      `json:"sun,omitempty"`
	Moon       *Astro      `json:"moon,omitempty"`
	AirQuality *AirQuality `json:"airQuality,omitempty"`
	Pollen     *Pollen     `json:"pollen,omitempty"`
	UV         *UV         `json:"uv,omitempty"`
	HoursOfSun *float64    `json:"hoursOfSun,omitempty"`
}
