package model

import (
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

// Read-surface views. Derived values (feels-like, compass direction, index
// classifications, alert activity) are computed here at read time; the
// stored aggregate never carries them.

type WindView struct {
	Speed     *float64 `json:"speed,omitempty"`
	Degree    *float64 `json:"degree,omitempty"`
	Gusts     *float64 `json:"gusts,omitempty"`
	Direction *string  `json:"direction,omitempty"`
	Level     *string  `json:"level,omitempty"`
}

func NewWindView(wind *entity.Wind) *WindView {
	if wind == nil {
		return nil
	}
	return &WindView{
		Speed:     wind.Speed,
		Degree:    wind.Degree,
		Gusts:     wind.Gusts,
		Direction: wind.Direction(),
		Level:     wind.Level(),
	}
}

type TemperatureView struct {
	entity.Temperature
	FeelsLike *float64 `json:"feelsLike,omitempty"`
}

func NewTemperatureView(temperature *entity.Temperature) *TemperatureView {
	if temperature == nil {
		return nil
	}
	return &TemperatureView{Temperature: *temperature, FeelsLike: temperature.FeelsLike()}
}

type AirQualityView struct {
	entity.AirQuality
	Index *int    `json:"index,omitempty"`
	Level *string `json:"level,omitempty"`
}

func NewAirQualityView(aq *entity.AirQuality) *AirQualityView {
	if aq == nil {
		return nil
	}
	return &AirQualityView{AirQuality: *aq, Index: aq.GlobalIndex(), Level: aq.GlobalLevel()}
}

type PollenView struct {
	entity.Pollen
	Index *int `json:"index,omitempty"`
}

func NewPollenView(pollen *entity.Pollen) *PollenView {
	if pollen == nil {
		return nil
	}
	return &PollenView{Pollen: *pollen, Index: pollen.GlobalIndex()}
}

type UVView struct {
	entity.UV
	Color *string `json:"color,omitempty"`
}

func NewUVView(uv *entity.UV) *UVView {
	if uv == nil {
		return nil
	}
	return &UVView{UV: *uv, Color: uv.Color()}
}

type CurrentView struct {
	WeatherCode      *entity.WeatherCode `json:"weatherCode,omitempty"`
	WeatherText      *string             `json:"weatherText,omitempty"`
	Temperature      *TemperatureView    `json:"temperature,omitempty"`
	Wind             *WindView           `json:"wind,omitempty"`
	UV               *UVView             `json:"uv,omitempty"`
	AirQuality       *AirQualityView     `json:"airQuality,omitempty"`
	RelativeHumidity *float64            `json:"relativeHumidity,omitempty"`
	DewPoint         *float64            `json:"dewPoint,omitempty"`
	Pressure         *float64            `json:"pressure,omitempty"`
	CloudCover       *int                `json:"cloudCover,omitempty"`
	Visibility       *float64            `json:"visibility,omitempty"`
	ObservationTime  *time.Time          `json:"observationTime,omitempty"`
}

func NewCurrentView(current *entity.Current) *CurrentView {
	if current == nil {
		return nil
	}
	return &CurrentView{
		WeatherCode:      current.WeatherCode,
		WeatherText:      current.WeatherText,
		Temperature:      NewTemperatureView(current.Temperature),
		Wind:             NewWindView(current.Wind),
		UV:               NewUVView(current.UV),
		AirQuality:       NewAirQualityView(current.AirQuality),
		RelativeHumidity: current.RelativeHumidity,
		DewPoint:         current.DewPoint,
		Pressure:         current.Pressure,
		CloudCover:       current.CloudCover,
		Visibility:       current.Visibility,
		ObservationTime:  current.ObservationTime,
	}
}

type HalfDayView struct {
	WeatherCode              *entity.WeatherCode              `json:"weatherCode,omitempty"`
	WeatherPhrase            *string                          `json:"weatherPhrase,omitempty"`
	WeatherText              *string                          `json:"weatherText,omitempty"`
	Temperature              *TemperatureView                 `json:"temperature,omitempty"`
	Precipitation            *entity.Precipitation            `json:"precipitation,omitempty"`
	PrecipitationProbability *entity.PrecipitationProbability `json:"precipitationProbability,omitempty"`
	PrecipitationDuration    *entity.PrecipitationDuration    `json:"precipitationDuration,omitempty"`
	Wind                     *WindView                        `json:"wind,omitempty"`
	CloudCover               *int                             `json:"cloudCover,omitempty"`
}

func NewHalfDayView(half *entity.HalfDay) *HalfDayView {
	if half == nil {
		return nil
	}
	return &HalfDayView{
		WeatherCode:              half.WeatherCode,
		WeatherPhrase:            half.WeatherPhrase,
		WeatherText:              half.WeatherText,
		Temperature:              NewTemperatureView(half.Temperature),
		Precipitation:            half.Precipitation,
		PrecipitationProbability: half.PrecipitationProbability,
		PrecipitationDuration:    half.PrecipitationDuration,
		Wind:                     NewWindView(half.Wind),
		CloudCover:               half.CloudCover,
	}
}

type DailyView struct {
	Date       time.Time       `json:"date"`
	Day        *HalfDayView    `json:"day,omitempty"`
	Night      *HalfDayView    `json:"night,omitempty"`
	Sun        *entity.Astro   `json:"sun,omitempty"`
	Moon       *entity.Astro   `json:"moon,omitempty"`
	AirQuality *AirQualityView `json:"airQuality,omitempty"`
	Pollen     *PollenView     `json:"pollen,omitempty"`
	UV         *UVView         `json:"uv,omitempty"`
	HoursOfSun *float64        `json:"hoursOfSun,omitempty"`
}

func NewDailyView(daily entity.Daily) DailyView {
	return DailyView{
		Date:       daily.Date,
		Day:        NewHalfDayView(daily.Day),
		Night:      NewHalfDayView(daily.Night),
		Sun:        daily.Sun,
		Moon:       daily.Moon,
		AirQuality: NewAirQualityView(daily.AirQuality),
		Pollen:     NewPollenView(daily.Pollen),
		UV:         NewUVView(daily.UV),
		HoursOfSun: daily.HoursOfSun,
	}
}

type HourlyView struct {
	Time                     time.Time                        `json:"time"`
	IsDaylight               *bool                            `json:"isDaylight,omitempty"`
	WeatherCode              *entity.WeatherCode              `json:"weatherCode,omitempty"`
	WeatherText              *string                          `json:"weatherText,omitempty"`
	Temperature              *TemperatureView                 `json:"temperature,omitempty"`
	Precipitation            *entity.Precipitation            `json:"precipitation,omitempty"`
	PrecipitationProbability *entity.PrecipitationProbability `json:"precipitationProbability,omitempty"`
	Wind                     *WindView                        `json:"wind,omitempty"`
	AirQuality               *AirQualityView                  `json:"airQuality,omitempty"`
	UV                       *UVView                          `json:"uv,omitempty"`
	RelativeHumidity         *float64                         `json:"relativeHumidity,omitempty"`
	DewPoint                 *float64                         `json:"dewPoint,omitempty"`
	Pressure                 *float64                         `json:"pressure,omitempty"`
	CloudCover               *int                             `json:"cloudCover,omitempty"`
	Visibility               *float64                         `json:"visibility,omitempty"`
}

func NewHourlyView(hourly entity.Hourly) HourlyView {
	return HourlyView{
		Time:                     hourly.Time,
		IsDaylight:               hourly.IsDaylight,
		WeatherCode:              hourly.WeatherCode,
		WeatherText:              hourly.WeatherText,
		Temperature:              NewTemperatureView(hourly.Temperature),
		Precipitation:            hourly.Precipitation,
		PrecipitationProbability: hourly.PrecipitationProbability,
		Wind:                     NewWindView(hourly.Wind),
		AirQuality:               NewAirQualityView(hourly.AirQuality),
		UV:                       NewUVView(hourly.UV),
		RelativeHumidity:         hourly.RelativeHumidity,
		DewPoint:                 hourly.DewPoint,
		Pressure:                 hourly.Pressure,
		CloudCover:               hourly.CloudCover,
		Visibility:               hourly.Visibility,
	}
}

type MinutelyView struct {
	Time            time.Time `json:"time"`
	IntervalMinutes int       `json:"intervalMinutes"`
	Dbz             *int      `json:"dbz,omitempty"`
	Intensity       *float64  `json:"intensity,omitempty"`
}

func NewMinutelyView(minutely entity.Minutely) MinutelyView {
	return MinutelyView{
		Time:            minutely.Time,
		IntervalMinutes: minutely.IntervalMinutes,
		Dbz:             minutely.Dbz,
		Intensity:       minutely.PrecipitationIntensity(),
	}
}

type AlertView struct {
	entity.Alert
	SeverityColor string `json:"severityColor"`
	Active        bool   `json:"active"`
}

func NewAlertView(alert entity.Alert, now time.Time) AlertView {
	return AlertView{Alert: alert, SeverityColor: alert.Severity.Color(), Active: alert.IsActive(now)}
}

type WeatherView struct {
	Base     entity.Base     `json:"base"`
	Current  *CurrentView    `json:"current,omitempty"`
	Normals  *entity.Normals `json:"normals,omitempty"`
	Daily    []DailyView     `json:"daily,omitempty"`
	Hourly   []HourlyView    `json:"hourly,omitempty"`
	Minutely []MinutelyView  `json:"minutely,omitempty"`
	Alerts   []AlertView     `json:"alerts,omitempty"`
}

func NewWeatherView(weather entity.Weather, now time.Time) WeatherView {
	view := WeatherView{
		Base:    weather.Base,
		Current: NewCurrentView(weather.Current),
		Normals: weather.Normals,
	}
	for _, daily := range weather.Daily {
		view.Daily = append(view.Daily, NewDailyView(daily))
	}
	for _, hourly := range weather.Hourly {
		view.Hourly = append(view.Hourly, NewHourlyView(hourly))
	}
	for _, minutely := range weather.Minutely {
		view.Minutely = append(view.Minutely, NewMinutelyView(minutely))
	}
	for _, alert := range weather.Alerts {
		view.Alerts = append(view.Alerts, NewAlertView(alert, now))
	}
	return view
}
