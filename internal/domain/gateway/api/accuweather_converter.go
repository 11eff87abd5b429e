package api

import (
	"math"
	"strconv"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model/external"
)

// accuWeatherIconCodes maps AccuWeather icon numbers to the canonical
// classification. Icons absent from the table convert to nil.
var accuWeatherIconCodes = map[int]entity.WeatherCode{
	1:  entity.WeatherCodeClear,
	2:  entity.WeatherCodeClear,
	3:  entity.WeatherCodePartlyCloudy,
	4:  entity.WeatherCodePartlyCloudy,
	5:  entity.WeatherCodeHaze,
	6:  entity.WeatherCodePartlyCloudy,
	7:  entity.WeatherCodeCloudy,
	8:  entity.WeatherCodeCloudy,
	11: entity.WeatherCodeFog,
	12: entity.WeatherCodeRain,
	13: entity.WeatherCodeRain,
	14: entity.WeatherCodeRain,
	15: entity.WeatherCodeThunderstorm,
	16: entity.WeatherCodeThunder,
	17: entity.WeatherCodeThunder,
	18: entity.WeatherCodeRain,
	19: entity.WeatherCodeSnow,
	20: entity.WeatherCodeSnow,
	21: entity.WeatherCodeSnow,
	22: entity.WeatherCodeSnow,
	23: entity.WeatherCodeSnow,
	24: entity.WeatherCodeHail,
	25: entity.WeatherCodeHail,
	26: entity.WeatherCodeSleet,
	29: entity.WeatherCodeSleet,
	30: entity.WeatherCodeClear,
	31: entity.WeatherCodeWind,
	32: entity.WeatherCodeWind,
	33: entity.WeatherCodeClear,
	34: entity.WeatherCodeClear,
	35: entity.WeatherCodePartlyCloudy,
	36: entity.WeatherCodePartlyCloudy,
	37: entity.WeatherCodeHaze,
	38: entity.WeatherCodePartlyCloudy,
	39: entity.WeatherCodeRain,
	40: entity.WeatherCodeRain,
	41: entity.WeatherCodeThunderstorm,
	42: entity.WeatherCodeThunderstorm,
	43: entity.WeatherCodeSnow,
	44: entity.WeatherCodeSnow,
}

var accuWeatherAlertLevels = map[string]entity.AlertSeverity{
	"Minor":    entity.AlertSeverityMinor,
	"Moderate": entity.AlertSeverityModerate,
	"Severe":   entity.AlertSeveritySevere,
	"Extreme":  entity.AlertSeverityExtreme,
}

func convertAccuWeatherIcon(icon *int) *entity.WeatherCode {
	if icon == nil {
		return nil
	}
	canonical, ok := accuWeatherIconCodes[*icon]
	if !ok {
		return nil
	}
	return &canonical
}

// convertAccuWeatherForecast maps the daily forecast payload to canonical
// dailies. Dates are normalized to local midnight in the location's zone.
func convertAccuWeatherForecast(resp *external.AccuWeatherDailyResponse, zone *time.Location) (*model.WeatherWrapper, error) {
	if resp == nil || len(resp.DailyForecasts) == 0 {
		return nil, model.ErrNoUsableData
	}

	dailies := make([]entity.Daily, 0, len(resp.DailyForecasts))
	for _, forecast := range resp.DailyForecasts {
		dailies = append(dailies, convertAccuWeatherDay(forecast, zone))
	}
	return &model.WeatherWrapper{Dailies: dailies}, nil
}

// convertAccuWeatherPollen extracts the per-day pollen figures from the same
// daily payload. A literal zero with an empty category means the taxon was
// not measured and maps to nil; "Tree" is reported under birch.
func convertAccuWeatherPollen(resp *external.AccuWeatherDailyResponse, zone *time.Location) (*model.WeatherWrapper, error) {
	if resp == nil || len(resp.DailyForecasts) == 0 {
		return nil, model.ErrNoUsableData
	}

	daily := make(map[time.Time]entity.Pollen, len(resp.DailyForecasts))
	for _, forecast := range resp.DailyForecasts {
		pollen := entity.Pollen{}
		for _, item := range forecast.AirAndPollen {
			value := accuWeatherPollenValue(item)
			switch item.Name {
			case "Grass":
				pollen.Grass = value
			case "Ragweed":
				pollen.Ragweed = value
			case "Mugwort":
				pollen.Mugwort = value
			case "Tree":
				pollen.Birch = value
			}
		}
		if pollen.IsValid() {
			daily[localMidnight(forecast.EpochDate, zone)] = pollen
		}
	}

	if len(daily) == 0 {
		return nil, model.ErrNoUsableData
	}
	return &model.WeatherWrapper{Pollen: &model.PollenWrapper{Daily: daily}}, nil
}

func accuWeatherPollenValue(item external.AccuWeatherAirAndPollen) *float64 {
	if item.Value == nil {
		return nil
	}
	if *item.Value == 0 && item.Category == "" {
		return nil
	}
	return item.Value
}

func convertAccuWeatherDay(forecast external.AccuWeatherDailyForecast, zone *time.Location) entity.Daily {
	day := entity.Daily{Date: localMidnight(forecast.EpochDate, zone)}

	day.Day = convertAccuWeatherHalfDay(forecast.Day)
	day.Night = convertAccuWeatherHalfDay(forecast.Night)
	if forecast.Temperature != nil {
		setHalfDayTemperature(day.Day, rangeValue(forecast.Temperature.Maximum), rangeRealFeel(forecast, true))
		setHalfDayTemperature(day.Night, rangeValue(forecast.Temperature.Minimum), rangeRealFeel(forecast, false))
	}
	day.Sun = convertAccuWeatherAstro(forecast.Sun)
	day.Moon = convertAccuWeatherAstro(forecast.Moon)

	for _, item := range forecast.AirAndPollen {
		if item.Name == "UVIndex" {
			day.UV = entity.NewUV(item.Value)
		}
	}
	return day
}

func convertAccuWeatherHalfDay(raw *external.AccuWeatherHalfDay) *entity.HalfDay {
	if raw == nil {
		return nil
	}
	half := &entity.HalfDay{
		WeatherCode:   convertAccuWeatherIcon(raw.Icon),
		WeatherPhrase: raw.IconPhrase,
		WeatherText:   raw.LongPhrase,
		CloudCover:    raw.CloudCover,
	}

	precipitation := entity.Precipitation{
		Total: unitValueMm(raw.TotalLiquid),
		Rain:  unitValueMm(raw.Rain),
		Snow:  unitValueMm(raw.Snow),
		Ice:   unitValueMm(raw.Ice),
	}
	if precipitation.Total != nil || precipitation.CategorySum() != nil {
		half.Precipitation = &precipitation
	}

	probability := entity.PrecipitationProbability{
		Total:        raw.PrecipitationProbability,
		Thunderstorm: raw.ThunderstormProbability,
		Rain:         raw.RainProbability,
		Snow:         raw.SnowProbability,
		Ice:          raw.IceProbability,
	}
	if probability.Total != nil {
		half.PrecipitationProbability = &probability
	}

	duration := entity.PrecipitationDuration{
		Total: raw.HoursOfPrecipitation,
		Rain:  raw.HoursOfRain,
		Snow:  raw.HoursOfSnow,
		Ice:   raw.HoursOfIce,
	}
	if duration.Total != nil {
		half.PrecipitationDuration = &duration
	}

	wind := convertAccuWeatherWind(raw.Wind, raw.WindGust)
	if wind != nil {
		half.Wind = wind
	}
	return half
}

func convertAccuWeatherWind(raw, gust *external.AccuWeatherWind) *entity.Wind {
	wind := entity.Wind{}
	if raw != nil {
		if raw.Speed != nil {
			wind.Speed = convertPtr(raw.Speed.Value, kmhToMs)
		}
		if raw.Direction != nil {
			wind.Degree = raw.Direction.Degrees
		}
	}
	if gust != nil && gust.Speed != nil {
		wind.Gusts = convertPtr(gust.Speed.Value, kmhToMs)
	}
	if !wind.IsValid() && wind.Gusts == nil {
		return nil
	}
	return &wind
}

func convertAccuWeatherAstro(raw *external.AccuWeatherAstro) *entity.Astro {
	if raw == nil {
		return nil
	}
	astro := entity.Astro{RiseTime: epochTime(raw.EpochRise), SetTime: epochTime(raw.EpochSet)}
	if astro.RiseTime == nil && astro.SetTime == nil {
		return nil
	}
	return &astro
}

// convertAccuWeatherCurrent maps the current-conditions payload. Metric
// visibility arrives in km.
func convertAccuWeatherCurrent(resp []external.AccuWeatherCurrentResponse) (*model.WeatherWrapper, error) {
	if len(resp) == 0 {
		return nil, model.ErrNoUsableData
	}
	raw := resp[0]

	observationTime := time.Unix(raw.EpochTime, 0).UTC()
	current := entity.Current{
		WeatherCode:      convertAccuWeatherIcon(raw.WeatherIcon),
		WeatherText:      raw.WeatherText,
		RelativeHumidity: raw.RelativeHumidity,
		DewPoint:         metricValue(raw.DewPoint),
		Pressure:         metricValue(raw.Pressure),
		CloudCover:       raw.CloudCover,
		Visibility:       convertPtr(metricValue(raw.Visibility), kmToM),
		ObservationTime:  &observationTime,
	}

	temperature := entity.Temperature{
		Temperature:   metricValue(raw.Temperature),
		RealFeel:      metricValue(raw.RealFeelTemperature),
		RealFeelShade: metricValue(raw.RealFeelTemperatureShade),
		Apparent:      metricValue(raw.ApparentTemperature),
		WindChill:     metricValue(raw.WindChillTemperature),
		WetBulb:       metricValue(raw.WetBulbTemperature),
	}
	if !temperature.IsEmpty() {
		current.Temperature = &temperature
	}
	current.Wind = convertAccuWeatherWind(raw.Wind, raw.WindGust)

	if raw.UVIndex != nil {
		current.UV = entity.NewUV(raw.UVIndex)
		if current.UV != nil && raw.UVIndexText != nil {
			current.UV.Description = raw.UVIndexText
		}
	}
	return &model.WeatherWrapper{Current: &current}, nil
}

// convertAccuWeatherMinuteCast maps the nowcast intervals. Reflectivity is
// provided directly by the provider.
func convertAccuWeatherMinuteCast(resp *external.AccuWeatherMinuteCastResponse) (*model.WeatherWrapper, error) {
	if resp == nil || len(resp.Intervals) == 0 {
		return nil, model.ErrNoUsableData
	}

	minutely := make([]entity.Minutely, 0, len(resp.Intervals))
	for i, interval := range resp.Intervals {
		entry := entity.Minutely{
			Time:            time.Unix(interval.StartEpochDateTime, 0).UTC(),
			IntervalMinutes: accuWeatherIntervalMinutes(resp.Intervals, i),
		}
		if interval.Dbz != nil {
			dbz := int(math.Round(*interval.Dbz))
			entry.Dbz = &dbz
		}
		minutely = append(minutely, entry)
	}
	return &model.WeatherWrapper{Minutely: minutely}, nil
}

func accuWeatherIntervalMinutes(intervals []external.AccuWeatherMinuteInterval, i int) int {
	if i+1 < len(intervals) {
		delta := intervals[i+1].StartEpochDateTime - intervals[i].StartEpochDateTime
		if delta > 0 {
			return int(delta / 60)
		}
	}
	if i > 0 {
		return accuWeatherIntervalMinutes(intervals, i-1)
	}
	return 1
}

// convertAccuWeatherAlerts maps active alerts, one canonical alert per
// affected area so the area's validity window is preserved.
func convertAccuWeatherAlerts(resp []external.AccuWeatherAlertResponse) (*model.WeatherWrapper, error) {
	var alerts []entity.Alert
	for _, raw := range resp {
		severity := entity.AlertSeverityUnknown
		if raw.Level != nil {
			severity = accuWeatherAlertLevels[*raw.Level]
		}
		var headline *string
		if raw.Description != nil && raw.Description.Localized != "" {
			headline = &raw.Description.Localized
		}

		if len(raw.Area) == 0 {
			alerts = append(alerts, entity.Alert{
				AlertID:  strconv.FormatInt(raw.AlertID, 10),
				Headline: headline,
				Source:   raw.Source,
				Severity: severity,
			})
			continue
		}
		for i, area := range raw.Area {
			alert := entity.Alert{
				AlertID:     strconv.FormatInt(raw.AlertID, 10) + "-" + strconv.Itoa(i),
				StartTime:   epochTime(area.EpochStartTime),
				EndTime:     epochTime(area.EpochEndTime),
				Headline:    headline,
				Description: area.Text,
				Instruction: area.Summary,
				Source:      raw.Source,
				Severity:    severity,
			}
			alerts = append(alerts, alert)
		}
	}
	return &model.WeatherWrapper{Alerts: alerts}, nil
}

// convertAccuWeatherNormals maps the climatology normals for one month.
func convertAccuWeatherNormals(resp *external.AccuWeatherClimoResponse, month time.Month) (*model.WeatherWrapper, error) {
	if resp == nil || resp.Normals == nil || resp.Normals.Temperatures == nil {
		return nil, model.ErrNoUsableData
	}
	normals := entity.Normals{
		Month:                int(month),
		DaytimeTemperature:   rangeValue(resp.Normals.Temperatures.Maximum),
		NighttimeTemperature: rangeValue(resp.Normals.Temperatures.Minimum),
	}
	if normals.DaytimeTemperature == nil && normals.NighttimeTemperature == nil {
		return nil, model.ErrNoUsableData
	}
	return &model.WeatherWrapper{Normals: &normals}, nil
}

// convertAccuWeatherLocation maps a location lookup to a place plus the
// location key parameter.
func convertAccuWeatherLocation(resp *external.AccuWeatherLocationResponse) (*model.Place, map[string]string, error) {
	if resp == nil || resp.Key == "" {
		return nil, nil, model.ErrNoUsableData
	}
	place := &model.Place{
		Name:     resp.LocalizedName,
		Country:  resp.Country.LocalizedName,
		Admin:    resp.AdministrativeArea.LocalizedName,
		TimeZone: resp.TimeZone.Name,
	}
	return place, map[string]string{"locationKey": resp.Key}, nil
}

func localMidnight(epoch int64, zone *time.Location) time.Time {
	local := time.Unix(epoch, 0).In(zone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, zone)
}

func epochTime(epoch *int64) *time.Time {
	if epoch == nil {
		return nil
	}
	t := time.Unix(*epoch, 0).UTC()
	return &t
}

func metricValue(v *external.AccuWeatherMetricValue) *float64 {
	if v == nil || v.Metric == nil {
		return nil
	}
	return v.Metric.Value
}

// unitValueMm normalizes a provider quantity to millimeters based on its
// unit label.
func unitValueMm(v *external.AccuWeatherUnitValue) *float64 {
	if v == nil || v.Value == nil {
		return nil
	}
	if v.Unit == "cm" {
		return convertPtr(v.Value, cmToMm)
	}
	return v.Value
}

func rangeValue(v *external.AccuWeatherUnitValue) *float64 {
	if v == nil {
		return nil
	}
	return v.Value
}

func rangeRealFeel(forecast external.AccuWeatherDailyForecast, day bool) *float64 {
	if forecast.RealFeelTemperature == nil {
		return nil
	}
	if day {
		return rangeValue(forecast.RealFeelTemperature.Maximum)
	}
	return rangeValue(forecast.RealFeelTemperature.Minimum)
}

func setHalfDayTemperature(half *entity.HalfDay, temperature, realFeel *float64) {
	if half == nil || (temperature == nil && realFeel == nil) {
		return
	}
	half.Temperature = &entity.Temperature{Temperature: temperature, RealFeel: realFeel}
}
