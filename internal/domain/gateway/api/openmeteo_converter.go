package api

import (
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model/external"
)

// openMeteoWeatherCodes maps the WMO weather interpretation codes to the
// canonical classification. Codes absent from the table convert to nil.
var openMeteoWeatherCodes = map[int]entity.WeatherCode{
	0:  entity.WeatherCodeClear,
	1:  entity.WeatherCodePartlyCloudy,
	2:  entity.WeatherCodePartlyCloudy,
	3:  entity.WeatherCodeCloudy,
	45: entity.WeatherCodeFog,
	48: entity.WeatherCodeFog,
	51: entity.WeatherCodeRain,
	53: entity.WeatherCodeRain,
	55: entity.WeatherCodeRain,
	56: entity.WeatherCodeSleet,
	57: entity.WeatherCodeSleet,
	61: entity.WeatherCodeRain,
	63: entity.WeatherCodeRain,
	65: entity.WeatherCodeRain,
	66: entity.WeatherCodeSleet,
	67: entity.WeatherCodeSleet,
	71: entity.WeatherCodeSnow,
	73: entity.WeatherCodeSnow,
	75: entity.WeatherCodeSnow,
	77: entity.WeatherCodeSnow,
	80: entity.WeatherCodeRain,
	81: entity.WeatherCodeRain,
	82: entity.WeatherCodeRain,
	85: entity.WeatherCodeSnow,
	86: entity.WeatherCodeSnow,
	95: entity.WeatherCodeThunderstorm,
	96: entity.WeatherCodeHail,
	99: entity.WeatherCodeHail,
}

func convertOpenMeteoWeatherCode(code *int) *entity.WeatherCode {
	if code == nil {
		return nil
	}
	canonical, ok := openMeteoWeatherCodes[*code]
	if !ok {
		return nil
	}
	return &canonical
}

// convertOpenMeteoForecast maps a forecast payload to canonical daily and
// hourly series. A payload without hourly entries is unusable; the cached
// forecast must be kept instead.
func convertOpenMeteoForecast(resp *external.OpenMeteoForecastResponse) (*model.WeatherWrapper, error) {
	if resp == nil || resp.Hourly == nil || len(resp.Hourly.Time) == 0 {
		return nil, model.ErrNoUsableData
	}

	hourlies := make([]entity.Hourly, 0, len(resp.Hourly.Time))
	for i, ts := range resp.Hourly.Time {
		hourlies = append(hourlies, convertOpenMeteoHour(resp.Hourly, i, ts))
	}

	var dailies []entity.Daily
	if resp.Daily != nil {
		dailies = make([]entity.Daily, 0, len(resp.Daily.Time))
		for i, ts := range resp.Daily.Time {
			dailies = append(dailies, convertOpenMeteoDay(resp.Daily, i, ts))
		}
	}

	return &model.WeatherWrapper{Dailies: dailies, Hourlies: hourlies}, nil
}

func convertOpenMeteoHour(hourly *external.OpenMeteoHourly, i int, ts int64) entity.Hourly {
	hour := entity.Hourly{
		Time:        time.Unix(ts, 0).UTC(),
		WeatherCode: convertOpenMeteoWeatherCode(intAt(hourly.WeatherCode, i)),
	}
	if hour.WeatherCode != nil {
		text := hour.WeatherCode.Description()
		hour.WeatherText = &text
	}

	temperature := entity.Temperature{
		Temperature: floatAt(hourly.Temperature2m, i),
		Apparent:    floatAt(hourly.ApparentTemperature, i),
	}
	if !temperature.IsEmpty() {
		hour.Temperature = &temperature
	}

	rain := sumOptional(floatAt(hourly.Rain, i), floatAt(hourly.Showers, i))
	snow := convertPtr(floatAt(hourly.Snowfall, i), cmToMm)
	if total := floatAt(hourly.Precipitation, i); total != nil || rain != nil || snow != nil {
		hour.Precipitation = &entity.Precipitation{Total: total, Rain: rain, Snow: snow}
	}
	if probability := floatAt(hourly.PrecipitationProbability, i); probability != nil {
		hour.PrecipitationProbability = &entity.PrecipitationProbability{Total: probability}
	}

	wind := entity.Wind{
		Speed:  convertPtr(floatAt(hourly.WindSpeed10m, i), kmhToMs),
		Degree: floatAt(hourly.WindDirection10m, i),
		Gusts:  convertPtr(floatAt(hourly.WindGusts10m, i), kmhToMs),
	}
	if wind.IsValid() {
		hour.Wind = &wind
	}

	hour.UV = entity.NewUV(floatAt(hourly.UVIndex, i))
	hour.RelativeHumidity = floatAt(hourly.RelativeHumidity2m, i)
	hour.DewPoint = floatAt(hourly.DewPoint2m, i)
	hour.Pressure = floatAt(hourly.SurfacePressure, i)
	hour.CloudCover = intAt(hourly.CloudCover, i)
	hour.Visibility = floatAt(hourly.Visibility, i)
	if isDay := intAt(hourly.IsDay, i); isDay != nil {
		daylight := *isDay == 1
		hour.IsDaylight = &daylight
	}
	return hour
}

func convertOpenMeteoDay(daily *external.OpenMeteoDaily, i int, ts int64) entity.Daily {
	day := entity.Daily{Date: time.Unix(ts, 0).UTC()}

	code := convertOpenMeteoWeatherCode(intAt(daily.WeatherCode, i))
	var text *string
	if code != nil {
		description := code.Description()
		text = &description
	}

	day.Day = &entity.HalfDay{
		WeatherCode:   code,
		WeatherPhrase: text,
		Temperature: &entity.Temperature{
			Temperature: floatAt(daily.Temperature2mMax, i),
			Apparent:    floatAt(daily.ApparentTemperatureMax, i),
		},
	}
	day.Night = &entity.HalfDay{
		WeatherCode:   code,
		WeatherPhrase: text,
		Temperature: &entity.Temperature{
			Temperature: floatAt(daily.Temperature2mMin, i),
			Apparent:    floatAt(daily.ApparentTemperatureMin, i),
		},
	}
	if probability := floatAt(daily.PrecipitationProbabilityMax, i); probability != nil {
		day.Day.PrecipitationProbability = &entity.PrecipitationProbability{Total: probability}
	}

	sun := entity.Astro{
		RiseTime: timeAt(daily.Sunrise, i),
		SetTime:  timeAt(daily.Sunset, i),
	}
	if sun.RiseTime != nil || sun.SetTime != nil {
		day.Sun = &sun
	}
	day.UV = entity.NewUV(floatAt(daily.UVIndexMax, i))
	return day
}

// convertOpenMeteoCurrent maps the current block to a canonical snapshot.
func convertOpenMeteoCurrent(resp *external.OpenMeteoForecastResponse) (*model.WeatherWrapper, error) {
	if resp == nil || resp.Current == nil {
		return nil, model.ErrNoUsableData
	}
	raw := resp.Current

	observationTime := time.Unix(raw.Time, 0).UTC()
	current := entity.Current{
		WeatherCode:      convertOpenMeteoWeatherCode(raw.WeatherCode),
		RelativeHumidity: raw.RelativeHumidity2m,
		DewPoint:         raw.DewPoint2m,
		Pressure:         raw.SurfacePressure,
		CloudCover:       raw.CloudCover,
		Visibility:       raw.Visibility,
		UV:               entity.NewUV(raw.UVIndex),
		ObservationTime:  &observationTime,
	}
	if current.WeatherCode != nil {
		text := current.WeatherCode.Description()
		current.WeatherText = &text
	}

	temperature := entity.Temperature{Temperature: raw.Temperature2m, Apparent: raw.ApparentTemperature}
	if !temperature.IsEmpty() {
		current.Temperature = &temperature
	}
	wind := entity.Wind{
		Speed:  convertPtr(raw.WindSpeed10m, kmhToMs),
		Degree: raw.WindDirection10m,
		Gusts:  convertPtr(raw.WindGusts10m, kmhToMs),
	}
	if wind.IsValid() {
		current.Wind = &wind
	}

	return &model.WeatherWrapper{Current: &current}, nil
}

// convertOpenMeteoAirQuality maps the air-quality payload to per-hour
// canonical values keyed by instant. CO arrives in µg/m³ and is stored in
// mg/m³.
func convertOpenMeteoAirQuality(resp *external.OpenMeteoAirQualityResponse) (*model.WeatherWrapper, error) {
	if resp == nil || resp.Hourly == nil || len(resp.Hourly.Time) == 0 {
		return nil, model.ErrNoUsableData
	}

	hourly := make(map[time.Time]entity.AirQuality, len(resp.Hourly.Time))
	for i, ts := range resp.Hourly.Time {
		aq := entity.AirQuality{
			PM25: floatAt(resp.Hourly.PM25, i),
			PM10: floatAt(resp.Hourly.PM10, i),
			SO2:  floatAt(resp.Hourly.SulphurDioxide, i),
			NO2:  floatAt(resp.Hourly.NitrogenDioxide, i),
			O3:   floatAt(resp.Hourly.Ozone, i),
			CO:   convertPtr(floatAt(resp.Hourly.CarbonMonoxide, i), func(v float64) float64 { return v / 1000 }),
		}
		if aq.IsValid() {
			hourly[time.Unix(ts, 0).UTC()] = aq
		}
	}

	wrapper := &model.WeatherWrapper{AirQuality: &model.AirQualityWrapper{Hourly: hourly}}
	if resp.Current != nil {
		current := entity.AirQuality{
			PM25: resp.Current.PM25,
			PM10: resp.Current.PM10,
			SO2:  resp.Current.SulphurDioxide,
			NO2:  resp.Current.NitrogenDioxide,
			O3:   resp.Current.Ozone,
			CO:   convertPtr(resp.Current.CarbonMonoxide, func(v float64) float64 { return v / 1000 }),
		}
		if current.IsValid() {
			wrapper.AirQuality.Current = &current
		}
	}
	return wrapper, nil
}

// convertOpenMeteoMinutely maps the 15-minute precipitation series to
// canonical minutely intervals, encoding the rate as reflectivity.
func convertOpenMeteoMinutely(resp *external.OpenMeteoForecastResponse) (*model.WeatherWrapper, error) {
	if resp == nil || resp.Minutely15 == nil || len(resp.Minutely15.Time) == 0 {
		return nil, model.ErrNoUsableData
	}

	minutely := make([]entity.Minutely, 0, len(resp.Minutely15.Time))
	for i, ts := range resp.Minutely15.Time {
		interval := entity.Minutely{Time: time.Unix(ts, 0).UTC(), IntervalMinutes: 15}
		if amount := floatAt(resp.Minutely15.Precipitation, i); amount != nil {
			// mm per 15 minutes to mm/h before encoding.
			dbz := entity.DbzFromIntensity(*amount * 4)
			interval.Dbz = &dbz
		}
		minutely = append(minutely, interval)
	}
	return &model.WeatherWrapper{Minutely: minutely}, nil
}

// convertOpenMeteoPlace maps the first geocoding result.
func convertOpenMeteoPlace(resp *external.OpenMeteoGeocodingResponse) (*model.Place, error) {
	if resp == nil || len(resp.Results) == 0 {
		return nil, model.ErrNoUsableData
	}
	result := resp.Results[0]
	return &model.Place{
		Name:      result.Name,
		Country:   result.Country,
		Admin:     result.Admin1,
		TimeZone:  result.Timezone,
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
	}, nil
}

func floatAt(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}

func intAt(values []*int, i int) *int {
	if i < len(values) {
		return values[i]
	}
	return nil
}

func timeAt(values []*int64, i int) *time.Time {
	if i >= len(values) || values[i] == nil {
		return nil
	}
	t := time.Unix(*values[i], 0).UTC()
	return &t
}

func sumOptional(values ...*float64) *float64 {
	var sum float64
	var found bool
	for _, v := range values {
		if v != nil {
			sum += *v
			found = true
		}
	}
	if !found {
		return nil
	}
	return &sum
}
