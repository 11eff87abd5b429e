package db

import (
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

// Flattened column groups shared by the weather tables. Optional entity
// values map to nullable columns; a nested struct whose columns are all NULL
// reads back as an absent value.

type temperatureColumns struct {
	Temperature   *float64
	RealFeel      *float64
	RealFeelShade *float64
	Apparent      *float64
	WindChill     *float64
	WetBulb       *float64
}

type precipitationColumns struct {
	Total        *float64
	Thunderstorm *float64
	Rain         *float64
	Snow         *float64
	Ice          *float64
}

type windColumns struct {
	Speed  *float64
	Degree *float64
	Gusts  *float64
}

type uvColumns struct {
	Index       *float64
	Level       *string
	Description *string
}

type airQualityColumns struct {
	PM25 *float64 `gorm:"column:pm25"`
	PM10 *float64 `gorm:"column:pm10"`
	SO2  *float64 `gorm:"column:so2"`
	NO2  *float64 `gorm:"column:no2"`
	O3   *float64 `gorm:"column:o3"`
	CO   *float64 `gorm:"column:co"`
}

type pollenColumns struct {
	Alder   *float64
	Birch   *float64
	Grass   *float64
	Mugwort *float64
	Olive   *float64
	Ragweed *float64
}

type halfDayColumns struct {
	WeatherCode   *string
	WeatherPhrase *string
	WeatherText   *string
	Temperature   temperatureColumns   `gorm:"embedded;embeddedPrefix:temperature_"`
	Precipitation precipitationColumns `gorm:"embedded;embeddedPrefix:precipitation_"`
	Probability   precipitationColumns `gorm:"embedded;embeddedPrefix:probability_"`
	Duration      precipitationColumns `gorm:"embedded;embeddedPrefix:duration_"`
	Wind          windColumns          `gorm:"embedded;embeddedPrefix:wind_"`
	CloudCover    *int
}

type currentColumns struct {
	WeatherCode      *string
	WeatherText      *string
	Temperature      temperatureColumns `gorm:"embedded;embeddedPrefix:temperature_"`
	Wind             windColumns        `gorm:"embedded;embeddedPrefix:wind_"`
	UV               uvColumns          `gorm:"embedded;embeddedPrefix:uv_"`
	AirQuality       airQualityColumns  `gorm:"embedded;embeddedPrefix:air_quality_"`
	RelativeHumidity *float64
	DewPoint         *float64
	Pressure         *float64
	CloudCover       *int
	Visibility       *float64
	ObservationTime  *time.Time
}

// WeatherRecord is the one-per-location aggregate row: refresh bookkeeping,
// the current snapshot and the normals.
type WeatherRecord struct {
	LocationID           string `gorm:"primaryKey"`
	RefreshTime          *time.Time
	ForecastUpdateTime   *time.Time
	CurrentUpdateTime    *time.Time
	AirQualityUpdateTime *time.Time
	PollenUpdateTime     *time.Time
	MinutelyUpdateTime   *time.Time
	AlertsUpdateTime     *time.Time
	NormalsUpdateTime    *time.Time

	Current currentColumns `gorm:"embedded;embeddedPrefix:current_"`

	NormalsMonth                *int
	NormalsDaytimeTemperature   *float64
	NormalsNighttimeTemperature *float64
}

func (WeatherRecord) TableName() string { return "weathers" }

type DailyRecord struct {
	ID         uint      `gorm:"primaryKey"`
	LocationID string    `gorm:"index:idx_dailies_location_date,unique"`
	Date       time.Time `gorm:"index:idx_dailies_location_date,unique"`

	Day   halfDayColumns `gorm:"embedded;embeddedPrefix:day_"`
	Night halfDayColumns `gorm:"embedded;embeddedPrefix:night_"`

	SunRiseTime  *time.Time
	SunSetTime   *time.Time
	MoonRiseTime *time.Time
	MoonSetTime  *time.Time

	AirQuality airQualityColumns `gorm:"embedded;embeddedPrefix:air_quality_"`
	Pollen     pollenColumns     `gorm:"embedded;embeddedPrefix:pollen_"`
	UV         uvColumns         `gorm:"embedded;embeddedPrefix:uv_"`
	HoursOfSun *float64
}

func (DailyRecord) TableName() string { return "dailies" }

type HourlyRecord struct {
	ID         uint      `gorm:"primaryKey"`
	LocationID string    `gorm:"index:idx_hourlies_location_time,unique"`
	Time       time.Time `gorm:"index:idx_hourlies_location_time,unique"`

	IsDaylight    *bool
	WeatherCode   *string
	WeatherText   *string
	Temperature   temperatureColumns `gorm:"embedded;embeddedPrefix:temperature_"`
	Precipitation precipitationColumns `gorm:"embedded;embeddedPrefix:precipitation_"`
	Probability   precipitationColumns `gorm:"embedded;embeddedPrefix:probability_"`
	Wind          windColumns        `gorm:"embedded;embeddedPrefix:wind_"`
	AirQuality    airQualityColumns  `gorm:"embedded;embeddedPrefix:air_quality_"`
	UV            uvColumns          `gorm:"embedded;embeddedPrefix:uv_"`

	RelativeHumidity *float64
	DewPoint         *float64
	Pressure         *float64
	CloudCover       *int
	Visibility       *float64
}

func (HourlyRecord) TableName() string { return "hourlies" }

type MinutelyRecord struct {
	ID              uint      `gorm:"primaryKey"`
	LocationID      string    `gorm:"index:idx_minutelies_location_time,unique"`
	Time            time.Time `gorm:"index:idx_minutelies_location_time,unique"`
	IntervalMinutes int
	Dbz             *int
}

func (MinutelyRecord) TableName() string { return "minutelies" }

type AlertRecord struct {
	ID          uint   `gorm:"primaryKey"`
	LocationID  string `gorm:"index"`
	AlertID     string
	StartTime   *time.Time
	EndTime     *time.Time
	Headline    *string
	Description *string
	Instruction *string
	Source      *string
	Severity    int
	Color       *string
}

func (AlertRecord) TableName() string { return "alerts" }

// LocationRecord stores a tracked place. Parameters and FeatureSources are
// JSON documents; their shape is provider-defined.
type LocationRecord struct {
	ID             string `gorm:"primaryKey"`
	Latitude       float64
	Longitude      float64
	TimeZone       string
	Country        string
	City           string
	Parameters     string
	FeatureSources string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (LocationRecord) TableName() string { return "locations" }

// entity -> record

func newWeatherRecord(locationID string, w entity.Weather) WeatherRecord {
	record := WeatherRecord{
		LocationID:           locationID,
		RefreshTime:          w.Base.RefreshTime,
		ForecastUpdateTime:   w.Base.ForecastUpdateTime,
		CurrentUpdateTime:    w.Base.CurrentUpdateTime,
		AirQualityUpdateTime: w.Base.AirQualityUpdateTime,
		PollenUpdateTime:     w.Base.PollenUpdateTime,
		MinutelyUpdateTime:   w.Base.MinutelyUpdateTime,
		AlertsUpdateTime:     w.Base.AlertsUpdateTime,
		NormalsUpdateTime:    w.Base.NormalsUpdateTime,
	}
	if w.Current != nil {
		record.Current = newCurrentColumns(*w.Current)
	}
	if w.Normals != nil {
		month := w.Normals.Month
		record.NormalsMonth = &month
		record.NormalsDaytimeTemperature = w.Normals.DaytimeTemperature
		record.NormalsNighttimeTemperature = w.Normals.NighttimeTemperature
	}
	return record
}

func newCurrentColumns(current entity.Current) currentColumns {
	columns := currentColumns{
		WeatherCode:      weatherCodeString(current.WeatherCode),
		WeatherText:      current.WeatherText,
		RelativeHumidity: current.RelativeHumidity,
		DewPoint:         current.DewPoint,
		Pressure:         current.Pressure,
		CloudCover:       current.CloudCover,
		Visibility:       current.Visibility,
		ObservationTime:  current.ObservationTime,
	}
	if current.Temperature != nil {
		columns.Temperature = newTemperatureColumns(*current.Temperature)
	}
	if current.Wind != nil {
		columns.Wind = windColumns{Speed: current.Wind.Speed, Degree: current.Wind.Degree, Gusts: current.Wind.Gusts}
	}
	if current.UV != nil {
		columns.UV = uvColumns{Index: current.UV.Index, Level: current.UV.Level, Description: current.UV.Description}
	}
	if current.AirQuality != nil {
		columns.AirQuality = newAirQualityColumns(*current.AirQuality)
	}
	return columns
}

func newTemperatureColumns(t entity.Temperature) temperatureColumns {
	return temperatureColumns{
		Temperature:   t.Temperature,
		RealFeel:      t.RealFeel,
		RealFeelShade: t.RealFeelShade,
		Apparent:      t.Apparent,
		WindChill:     t.WindChill,
		WetBulb:       t.WetBulb,
	}
}

func newAirQualityColumns(aq entity.AirQuality) airQualityColumns {
	return airQualityColumns{PM25: aq.PM25, PM10: aq.PM10, SO2: aq.SO2, NO2: aq.NO2, O3: aq.O3, CO: aq.CO}
}

func newHalfDayColumns(half *entity.HalfDay) halfDayColumns {
	if half == nil {
		return halfDayColumns{}
	}
	columns := halfDayColumns{
		WeatherCode:   weatherCodeString(half.WeatherCode),
		WeatherPhrase: half.WeatherPhrase,
		WeatherText:   half.WeatherText,
		CloudCover:    half.CloudCover,
	}
	if half.Temperature != nil {
		columns.Temperature = newTemperatureColumns(*half.Temperature)
	}
	if half.Precipitation != nil {
		columns.Precipitation = precipitationColumns{
			Total:        half.Precipitation.Total,
			Thunderstorm: half.Precipitation.Thunderstorm,
			Rain:         half.Precipitation.Rain,
			Snow:         half.Precipitation.Snow,
			Ice:          half.Precipitation.Ice,
		}
	}
	if half.PrecipitationProbability != nil {
		columns.Probability = precipitationColumns{
			Total:        half.PrecipitationProbability.Total,
			Thunderstorm: half.PrecipitationProbability.Thunderstorm,
			Rain:         half.PrecipitationProbability.Rain,
			Snow:         half.PrecipitationProbability.Snow,
			Ice:          half.PrecipitationProbability.Ice,
		}
	}
	if half.PrecipitationDuration != nil {
		columns.Duration = precipitationColumns{
			Total:        half.PrecipitationDuration.Total,
			Thunderstorm: half.PrecipitationDuration.Thunderstorm,
			Rain:         half.PrecipitationDuration.Rain,
			Snow:         half.PrecipitationDuration.Snow,
			Ice:          half.PrecipitationDuration.Ice,
		}
	}
	if half.Wind != nil {
		columns.Wind = windColumns{Speed: half.Wind.Speed, Degree: half.Wind.Degree, Gusts: half.Wind.Gusts}
	}
	return columns
}

func newDailyRecord(locationID string, daily entity.Daily) DailyRecord {
	record := DailyRecord{
		LocationID: locationID,
		Date:       daily.Date,
		Day:        newHalfDayColumns(daily.Day),
		Night:      newHalfDayColumns(daily.Night),
		HoursOfSun: daily.HoursOfSun,
	}
	if daily.Sun != nil {
		record.SunRiseTime = daily.Sun.RiseTime
		record.SunSetTime = daily.Sun.SetTime
	}
	if daily.Moon != nil {
		record.MoonRiseTime = daily.Moon.RiseTime
		record.MoonSetTime = daily.Moon.SetTime
	}
	if daily.AirQuality != nil {
		record.AirQuality = newAirQualityColumns(*daily.AirQuality)
	}
	if daily.Pollen != nil {
		record.Pollen = pollenColumns{
			Alder:   daily.Pollen.Alder,
			Birch:   daily.Pollen.Birch,
			Grass:   daily.Pollen.Grass,
			Mugwort: daily.Pollen.Mugwort,
			Olive:   daily.Pollen.Olive,
			Ragweed: daily.Pollen.Ragweed,
		}
	}
	if daily.UV != nil {
		record.UV = uvColumns{Index: daily.UV.Index, Level: daily.UV.Level, Description: daily.UV.Description}
	}
	return record
}

func newHourlyRecord(locationID string, hourly entity.Hourly) HourlyRecord {
	record := HourlyRecord{
		LocationID:       locationID,
		Time:             hourly.Time,
		IsDaylight:       hourly.IsDaylight,
		WeatherCode:      weatherCodeString(hourly.WeatherCode),
		WeatherText:      hourly.WeatherText,
		RelativeHumidity: hourly.RelativeHumidity,
		DewPoint:         hourly.DewPoint,
		Pressure:         hourly.Pressure,
		CloudCover:       hourly.CloudCover,
		Visibility:       hourly.Visibility,
	}
	if hourly.Temperature != nil {
		record.Temperature = newTemperatureColumns(*hourly.Temperature)
	}
	if hourly.Precipitation != nil {
		record.Precipitation = precipitationColumns{
			Total:        hourly.Precipitation.Total,
			Thunderstorm: hourly.Precipitation.Thunderstorm,
			Rain:         hourly.Precipitation.Rain,
			Snow:         hourly.Precipitation.Snow,
			Ice:          hourly.Precipitation.Ice,
		}
	}
	if hourly.PrecipitationProbability != nil {
		record.Probability = precipitationColumns{
			Total:        hourly.PrecipitationProbability.Total,
			Thunderstorm: hourly.PrecipitationProbability.Thunderstorm,
			Rain:         hourly.PrecipitationProbability.Rain,
			Snow:         hourly.PrecipitationProbability.Snow,
			Ice:          hourly.PrecipitationProbability.Ice,
		}
	}
	if hourly.Wind != nil {
		record.Wind = windColumns{Speed: hourly.Wind.Speed, Degree: hourly.Wind.Degree, Gusts: hourly.Wind.Gusts}
	}
	if hourly.AirQuality != nil {
		record.AirQuality = newAirQualityColumns(*hourly.AirQuality)
	}
	if hourly.UV != nil {
		record.UV = uvColumns{Index: hourly.UV.Index, Level: hourly.UV.Level, Description: hourly.UV.Description}
	}
	return record
}

func newMinutelyRecord(locationID string, minutely entity.Minutely) MinutelyRecord {
	return MinutelyRecord{
		LocationID:      locationID,
		Time:            minutely.Time,
		IntervalMinutes: minutely.IntervalMinutes,
		Dbz:             minutely.Dbz,
	}
}

func newAlertRecord(locationID string, alert entity.Alert) AlertRecord {
	return AlertRecord{
		LocationID:  locationID,
		AlertID:     alert.AlertID,
		StartTime:   alert.StartTime,
		EndTime:     alert.EndTime,
		Headline:    alert.Headline,
		Description: alert.Description,
		Instruction: alert.Instruction,
		Source:      alert.Source,
		Severity:    int(alert.Severity),
		Color:       alert.Color,
	}
}

// record -> entity

func (record WeatherRecord) toEntity() entity.Weather {
	weather := entity.Weather{
		Base: entity.Base{
			RefreshTime:          record.RefreshTime,
			ForecastUpdateTime:   record.ForecastUpdateTime,
			CurrentUpdateTime:    record.CurrentUpdateTime,
			AirQualityUpdateTime: record.AirQualityUpdateTime,
			PollenUpdateTime:     record.PollenUpdateTime,
			MinutelyUpdateTime:   record.MinutelyUpdateTime,
			AlertsUpdateTime:     record.AlertsUpdateTime,
			NormalsUpdateTime:    record.NormalsUpdateTime,
		},
	}
	if current := record.Current.toEntity(); current != nil {
		weather.Current = current
	}
	if record.NormalsMonth != nil {
		weather.Normals = &entity.Normals{
			Month:                *record.NormalsMonth,
			DaytimeTemperature:   record.NormalsDaytimeTemperature,
			NighttimeTemperature: record.NormalsNighttimeTemperature,
		}
	}
	return weather
}

func (columns currentColumns) toEntity() *entity.Current {
	current := entity.Current{
		WeatherCode:      parseWeatherCode(columns.WeatherCode),
		WeatherText:      columns.WeatherText,
		Temperature:      columns.Temperature.toEntity(),
		Wind:             columns.Wind.toEntity(),
		UV:               columns.UV.toEntity(),
		AirQuality:       columns.AirQuality.toEntity(),
		RelativeHumidity: columns.RelativeHumidity,
		DewPoint:         columns.DewPoint,
		Pressure:         columns.Pressure,
		CloudCover:       columns.CloudCover,
		Visibility:       columns.Visibility,
		ObservationTime:  columns.ObservationTime,
	}
	if current.WeatherCode == nil && current.WeatherText == nil && current.Temperature == nil &&
		current.Wind == nil && current.UV == nil && current.AirQuality == nil &&
		current.RelativeHumidity == nil && current.Pressure == nil && current.ObservationTime == nil {
		return nil
	}
	return &current
}

func (columns temperatureColumns) toEntity() *entity.Temperature {
	temperature := entity.Temperature{
		Temperature:   columns.Temperature,
		RealFeel:      columns.RealFeel,
		RealFeelShade: columns.RealFeelShade,
		Apparent:      columns.Apparent,
		WindChill:     columns.WindChill,
		WetBulb:       columns.WetBulb,
	}
	if temperature.IsEmpty() {
		return nil
	}
	return &temperature
}

func (columns precipitationColumns) isEmpty() bool {
	return columns.Total == nil && columns.Thunderstorm == nil && columns.Rain == nil &&
		columns.Snow == nil && columns.Ice == nil
}

func (columns windColumns) toEntity() *entity.Wind {
	if columns.Speed == nil && columns.Degree == nil && columns.Gusts == nil {
		return nil
	}
	return &entity.Wind{Speed: columns.Speed, Degree: columns.Degree, Gusts: columns.Gusts}
}

func (columns uvColumns) toEntity() *entity.UV {
	if columns.Index == nil && columns.Level == nil && columns.Description == nil {
		return nil
	}
	return &entity.UV{Index: columns.Index, Level: columns.Level, Description: columns.Description}
}

func (columns airQualityColumns) toEntity() *entity.AirQuality {
	aq := entity.AirQuality{PM25: columns.PM25, PM10: columns.PM10, SO2: columns.SO2, NO2: columns.NO2, O3: columns.O3, CO: columns.CO}
	if !aq.IsValid() {
		return nil
	}
	return &aq
}

func (columns pollenColumns) toEntity() *entity.Pollen {
	pollen := entity.Pollen{
		Alder:   columns.Alder,
		Birch:   columns.Birch,
		Grass:   columns.Grass,
		Mugwort: columns.Mugwort,
		Olive:   columns.Olive,
		Ragweed: columns.Ragweed,
	}
	if !pollen.IsValid() {
		return nil
	}
	return &pollen
}

func (columns halfDayColumns) toEntity() *entity.HalfDay {
	half := entity.HalfDay{
		WeatherCode:   parseWeatherCode(columns.WeatherCode),
		WeatherPhrase: columns.WeatherPhrase,
		WeatherText:   columns.WeatherText,
		Temperature:   columns.Temperature.toEntity(),
		Wind:          columns.Wind.toEntity(),
		CloudCover:    columns.CloudCover,
	}
	if !columns.Precipitation.isEmpty() {
		half.Precipitation = &entity.Precipitation{
			Total:        columns.Precipitation.Total,
			Thunderstorm: columns.Precipitation.Thunderstorm,
			Rain:         columns.Precipitation.Rain,
			Snow:         columns.Precipitation.Snow,
			Ice:          columns.Precipitation.Ice,
		}
	}
	if !columns.Probability.isEmpty() {
		half.PrecipitationProbability = &entity.PrecipitationProbability{
			Total:        columns.Probability.Total,
			Thunderstorm: columns.Probability.Thunderstorm,
			Rain:         columns.Probability.Rain,
			Snow:         columns.Probability.Snow,
			Ice:          columns.Probability.Ice,
		}
	}
	if !columns.Duration.isEmpty() {
		half.PrecipitationDuration = &entity.PrecipitationDuration{
			Total:        columns.Duration.Total,
			Thunderstorm: columns.Duration.Thunderstorm,
			Rain:         columns.Duration.Rain,
			Snow:         columns.Duration.Snow,
			Ice:          columns.Duration.Ice,
		}
	}
	if half.WeatherCode == nil && half.WeatherPhrase == nil && half.WeatherText == nil &&
		half.Temperature == nil && half.Precipitation == nil && half.PrecipitationProbability == nil &&
		half.PrecipitationDuration == nil && half.Wind == nil && half.CloudCover == nil {
		return nil
	}
	return &half
}

func (record DailyRecord) toEntity() entity.Daily {
	daily := entity.Daily{
		Date:       record.Date,
		Day:        record.Day.toEntity(),
		Night:      record.Night.toEntity(),
		AirQuality: record.AirQuality.toEntity(),
		Pollen:     record.Pollen.toEntity(),
		UV:         record.UV.toEntity(),
		HoursOfSun: record.HoursOfSun,
	}
	if record.SunRiseTime != nil || record.SunSetTime != nil {
		daily.Sun = &entity.Astro{RiseTime: record.SunRiseTime, SetTime: record.SunSetTime}
	}
	if record.MoonRiseTime != nil || record.MoonSetTime != nil {
		daily.Moon = &entity.Astro{RiseTime: record.MoonRiseTime, SetTime: record.MoonSetTime}
	}
	return daily
}

func (record HourlyRecord) toEntity() entity.Hourly {
	hourly := entity.Hourly{
		Time:             record.Time,
		IsDaylight:       record.IsDaylight,
		WeatherCode:      parseWeatherCode(record.WeatherCode),
		WeatherText:      record.WeatherText,
		Temperature:      record.Temperature.toEntity(),
		Wind:             record.Wind.toEntity(),
		AirQuality:       record.AirQuality.toEntity(),
		UV:               record.UV.toEntity(),
		RelativeHumidity: record.RelativeHumidity,
		DewPoint:         record.DewPoint,
		Pressure:         record.Pressure,
		CloudCover:       record.CloudCover,
		Visibility:       record.Visibility,
	}
	if !record.Precipitation.isEmpty() {
		hourly.Precipitation = &entity.Precipitation{
			Total:        record.Precipitation.Total,
			Thunderstorm: record.Precipitation.Thunderstorm,
			Rain:         record.Precipitation.Rain,
			Snow:         record.Precipitation.Snow,
			Ice:          record.Precipitation.Ice,
		}
	}
	if !record.Probability.isEmpty() {
		hourly.PrecipitationProbability = &entity.PrecipitationProbability{
			Total:        record.Probability.Total,
			Thunderstorm: record.Probability.Thunderstorm,
			Rain:         record.Probability.Rain,
			Snow:         record.Probability.Snow,
			Ice:          record.Probability.Ice,
		}
	}
	return hourly
}

func (record MinutelyRecord) toEntity() entity.Minutely {
	return entity.Minutely{Time: record.Time, IntervalMinutes: record.IntervalMinutes, Dbz: record.Dbz}
}

func (record AlertRecord) toEntity() entity.Alert {
	return entity.Alert{
		AlertID:     record.AlertID,
		StartTime:   record.StartTime,
		EndTime:     record.EndTime,
		Headline:    record.Headline,
		Description: record.Description,
		Instruction: record.Instruction,
		Source:      record.Source,
		Severity:    entity.AlertSeverity(record.Severity),
		Color:       record.Color,
	}
}

func weatherCodeString(code *entity.WeatherCode) *string {
	if code == nil {
		return nil
	}
	s := string(*code)
	return &s
}

func parseWeatherCode(raw *string) *entity.WeatherCode {
	if raw == nil {
		return nil
	}
	code := entity.WeatherCode(*raw)
	if !code.IsValid() {
		return nil
	}
	return &code
}
