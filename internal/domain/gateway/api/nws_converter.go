package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model/external"
)

// nwsForecastKeywords maps keywords of the short forecast phrase to the
// canonical classification, checked in order so the most specific phenomenon
// wins.
var nwsForecastKeywords = []struct {
	keyword string
	code    entity.WeatherCode
}{
	{"thunderstorm", entity.WeatherCodeThunderstorm},
	{"thunder", entity.WeatherCodeThunder},
	{"freezing rain", entity.WeatherCodeSleet},
	{"freezing drizzle", entity.WeatherCodeSleet},
	{"sleet", entity.WeatherCodeSleet},
	{"ice", entity.WeatherCodeSleet},
	{"hail", entity.WeatherCodeHail},
	{"snow", entity.WeatherCodeSnow},
	{"flurries", entity.WeatherCodeSnow},
	{"blizzard", entity.WeatherCodeSnow},
	{"rain", entity.WeatherCodeRain},
	{"showers", entity.WeatherCodeRain},
	{"drizzle", entity.WeatherCodeRain},
	{"fog", entity.WeatherCodeFog},
	{"haze", entity.WeatherCodeHaze},
	{"smoke", entity.WeatherCodeHaze},
	{"dust", entity.WeatherCodeHaze},
	{"windy", entity.WeatherCodeWind},
	{"breezy", entity.WeatherCodeWind},
	{"mostly cloudy", entity.WeatherCodeCloudy},
	{"cloudy", entity.WeatherCodeCloudy},
	{"partly sunny", entity.WeatherCodePartlyCloudy},
	{"mostly sunny", entity.WeatherCodePartlyCloudy},
	{"partly clear", entity.WeatherCodePartlyCloudy},
	{"mostly clear", entity.WeatherCodePartlyCloudy},
	{"sunny", entity.WeatherCodeClear},
	{"clear", entity.WeatherCodeClear},
}

var nwsAlertSeverities = map[string]entity.AlertSeverity{
	"Minor":    entity.AlertSeverityMinor,
	"Moderate": entity.AlertSeverityModerate,
	"Severe":   entity.AlertSeveritySevere,
	"Extreme":  entity.AlertSeverityExtreme,
}

var nwsCompassDegrees = map[string]float64{
	"N": 0, "NNE": 22.5, "NE": 45, "ENE": 67.5,
	"E": 90, "ESE": 112.5, "SE": 135, "SSE": 157.5,
	"S": 180, "SSW": 202.5, "SW": 225, "WSW": 247.5,
	"W": 270, "WNW": 292.5, "NW": 315, "NNW": 337.5,
}

func convertNWSForecastPhrase(phrase string) *entity.WeatherCode {
	lowered := strings.ToLower(phrase)
	for _, entry := range nwsForecastKeywords {
		if strings.Contains(lowered, entry.keyword) {
			code := entry.code
			return &code
		}
	}
	return nil
}

// convertNWSForecast merges the half-day and hourly grid forecasts into
// canonical dailies and hourlies. Either payload may be absent; both being
// empty is unusable.
func convertNWSForecast(daily, hourly *external.NWSForecastResponse, zone *time.Location) (*model.WeatherWrapper, error) {
	wrapper := &model.WeatherWrapper{}
	if daily != nil {
		wrapper.Dailies = convertNWSDailies(daily.Properties.Periods, zone)
	}
	if hourly != nil {
		wrapper.Hourlies = convertNWSHourlies(hourly.Properties.Periods)
	}
	if len(wrapper.Dailies) == 0 && len(wrapper.Hourlies) == 0 {
		return nil, model.ErrNoUsableData
	}
	return wrapper, nil
}

func convertNWSDailies(periods []external.NWSForecastPeriod, zone *time.Location) []entity.Daily {
	byDate := make(map[time.Time]*entity.Daily)
	var order []time.Time

	for _, period := range periods {
		start, err := time.Parse(time.RFC3339, period.StartTime)
		if err != nil {
			continue
		}
		local := start.In(zone)
		date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, zone)
		// Overnight periods belong to the evening's calendar day.
		if !period.IsDaytime && local.Hour() < 6 {
			date = date.AddDate(0, 0, -1)
		}

		daily, ok := byDate[date]
		if !ok {
			daily = &entity.Daily{Date: date}
			byDate[date] = daily
			order = append(order, date)
		}
		half := convertNWSHalfDay(period)
		if period.IsDaytime {
			daily.Day = half
		} else if daily.Night == nil {
			daily.Night = half
		}
	}

	dailies := make([]entity.Daily, 0, len(order))
	for _, date := range order {
		dailies = append(dailies, *byDate[date])
	}
	return entity.SortDaily(dailies)
}

func convertNWSHalfDay(period external.NWSForecastPeriod) *entity.HalfDay {
	phrase := period.ShortForecast
	half := &entity.HalfDay{
		WeatherCode:   convertNWSForecastPhrase(phrase),
		WeatherPhrase: &phrase,
	}
	if temperature := convertNWSPeriodTemperature(period); temperature != nil {
		half.Temperature = &entity.Temperature{Temperature: temperature}
	}
	if probability := nwsQuantityValue(period.ProbabilityOfPrecipitation); probability != nil {
		half.PrecipitationProbability = &entity.PrecipitationProbability{Total: probability}
	}
	if wind := convertNWSPeriodWind(period); wind != nil {
		half.Wind = wind
	}
	return half
}

func convertNWSHourlies(periods []external.NWSForecastPeriod) []entity.Hourly {
	hourlies := make([]entity.Hourly, 0, len(periods))
	for _, period := range periods {
		start, err := time.Parse(time.RFC3339, period.StartTime)
		if err != nil {
			continue
		}
		phrase := period.ShortForecast
		isDaytime := period.IsDaytime
		hour := entity.Hourly{
			Time:             start.UTC(),
			IsDaylight:       &isDaytime,
			WeatherCode:      convertNWSForecastPhrase(phrase),
			WeatherText:      &phrase,
			RelativeHumidity: nwsQuantityValue(period.RelativeHumidity),
			DewPoint:         nwsTemperature(period.Dewpoint),
		}
		if temperature := convertNWSPeriodTemperature(period); temperature != nil {
			hour.Temperature = &entity.Temperature{Temperature: temperature}
		}
		if probability := nwsQuantityValue(period.ProbabilityOfPrecipitation); probability != nil {
			hour.PrecipitationProbability = &entity.PrecipitationProbability{Total: probability}
		}
		if wind := convertNWSPeriodWind(period); wind != nil {
			hour.Wind = wind
		}
		hourlies = append(hourlies, hour)
	}
	return entity.SortHourly(hourlies)
}

func convertNWSPeriodTemperature(period external.NWSForecastPeriod) *float64 {
	if period.Temperature == nil {
		return nil
	}
	if period.TemperatureUnit == "F" {
		return convertPtr(period.Temperature, fahrenheitToCelsius)
	}
	return period.Temperature
}

// convertNWSPeriodWind parses the textual wind speed, such as "10 mph" or
// "5 to 15 mph", keeping the upper bound of a range.
func convertNWSPeriodWind(period external.NWSForecastPeriod) *entity.Wind {
	speed := parseNWSWindSpeed(period.WindSpeed)
	var degree *float64
	if d, ok := nwsCompassDegrees[period.WindDirection]; ok {
		degree = &d
	}
	if speed == nil && degree == nil {
		return nil
	}
	return &entity.Wind{Speed: speed, Degree: degree}
}

func parseNWSWindSpeed(raw string) *float64 {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return nil
	}
	unit := fields[len(fields)-1]
	value, err := strconv.ParseFloat(fields[len(fields)-2], 64)
	if err != nil {
		return nil
	}
	switch unit {
	case "mph":
		return floatPtr(mphToMs(value))
	case "km/h":
		return floatPtr(kmhToMs(value))
	case "kt":
		return floatPtr(knotsToMs(value))
	}
	return nil
}

// convertNWSObservation maps the latest station observation. An observation
// older than a day no longer describes current conditions.
func convertNWSObservation(resp *external.NWSObservationResponse, now time.Time) (*model.WeatherWrapper, error) {
	if resp == nil {
		return nil, model.ErrNoUsableData
	}
	raw := resp.Properties

	observationTime, err := time.Parse(time.RFC3339, raw.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: observation timestamp %q", model.ErrParsing, raw.Timestamp)
	}
	if now.Sub(observationTime) > 24*time.Hour {
		return nil, fmt.Errorf("%w: observation from %s", model.ErrOutdatedServerData, observationTime.Format(time.RFC3339))
	}

	observationUTC := observationTime.UTC()
	var text *string
	if raw.TextDescription != "" {
		text = &raw.TextDescription
	}
	current := entity.Current{
		WeatherCode:      convertNWSForecastPhrase(raw.TextDescription),
		WeatherText:      text,
		RelativeHumidity: nwsQuantityValue(raw.RelativeHumidity),
		DewPoint:         nwsTemperature(raw.Dewpoint),
		Pressure:         nwsPressure(raw.BarometricPressure),
		Visibility:       nwsQuantityValue(raw.Visibility),
		ObservationTime:  &observationUTC,
	}

	temperature := entity.Temperature{
		Temperature: nwsTemperature(raw.Temperature),
		WindChill:   nwsTemperature(raw.WindChill),
		RealFeel:    nwsTemperature(raw.HeatIndex),
	}
	if !temperature.IsEmpty() {
		current.Temperature = &temperature
	}

	wind := entity.Wind{
		Speed:  nwsSpeed(raw.WindSpeed),
		Degree: nwsQuantityValue(raw.WindDirection),
		Gusts:  nwsSpeed(raw.WindGust),
	}
	if wind.IsValid() || wind.Degree != nil {
		current.Wind = &wind
	}

	return &model.WeatherWrapper{Current: &current}, nil
}

// convertNWSAlerts maps active alerts. Severity strings outside the CAP set
// rank as unknown.
func convertNWSAlerts(resp *external.NWSAlertsResponse) (*model.WeatherWrapper, error) {
	if resp == nil {
		return nil, model.ErrNoUsableData
	}

	var alerts []entity.Alert
	for _, feature := range resp.Features {
		raw := feature.Properties
		source := raw.SenderName
		alert := entity.Alert{
			AlertID:     raw.ID,
			StartTime:   parseNWSTime(raw.Onset),
			EndTime:     parseNWSTime(raw.Ends),
			Headline:    raw.Headline,
			Description: raw.Description,
			Instruction: raw.Instruction,
			Severity:    nwsAlertSeverities[raw.Severity],
		}
		if alert.Headline == nil && raw.Event != "" {
			event := raw.Event
			alert.Headline = &event
		}
		if source != "" {
			alert.Source = &source
		}
		alerts = append(alerts, alert)
	}
	return &model.WeatherWrapper{Alerts: alerts}, nil
}

func parseNWSTime(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func nwsQuantityValue(q *external.NWSQuantity) *float64 {
	if q == nil {
		return nil
	}
	return q.Value
}

func nwsTemperature(q *external.NWSQuantity) *float64 {
	if q == nil || q.Value == nil {
		return nil
	}
	if strings.HasSuffix(q.UnitCode, "degF") {
		return convertPtr(q.Value, fahrenheitToCelsius)
	}
	return q.Value
}

func nwsSpeed(q *external.NWSQuantity) *float64 {
	if q == nil || q.Value == nil {
		return nil
	}
	if strings.HasSuffix(q.UnitCode, "m_s-1") {
		return q.Value
	}
	return convertPtr(q.Value, kmhToMs)
}

func nwsPressure(q *external.NWSQuantity) *float64 {
	if q == nil || q.Value == nil {
		return nil
	}
	if strings.HasSuffix(q.UnitCode, ":Pa") {
		return convertPtr(q.Value, paToHpa)
	}
	return q.Value
}
