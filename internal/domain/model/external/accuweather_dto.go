package external

// AccuWeather API response structures. Metric units are requested, so
// temperatures arrive in °C, speeds in km/h, small lengths in mm/cm and
// visibility in km.

type AccuWeatherLocationResponse struct {
	Key               string                  `json:"Key"`
	LocalizedName     string                  `json:"LocalizedName"`
	Country           AccuWeatherNamedValue   `json:"Country"`
	AdministrativeArea AccuWeatherNamedValue  `json:"AdministrativeArea"`
	TimeZone          AccuWeatherTimeZone     `json:"TimeZone"`
}

type AccuWeatherNamedValue struct {
	ID            string `json:"ID"`
	LocalizedName string `json:"LocalizedName"`
}

type AccuWeatherTimeZone struct {
	Name string `json:"Name"`
}

type AccuWeatherDailyResponse struct {
	DailyForecasts []AccuWeatherDailyForecast `json:"DailyForecasts"`
}

type AccuWeatherDailyForecast struct {
	EpochDate   int64                     `json:"EpochDate"`
	Sun         *AccuWeatherAstro         `json:"Sun"`
	Moon        *AccuWeatherAstro         `json:"Moon"`
	Temperature *AccuWeatherTemperatureRange `json:"Temperature"`
	RealFeelTemperature *AccuWeatherTemperatureRange `json:"RealFeelTemperature"`
	RealFeelTemperatureShade *AccuWeatherTemperatureRange `json:"RealFeelTemperatureShade"`
	Day         *AccuWeatherHalfDay       `json:"Day"`
	Night       *AccuWeatherHalfDay       `json:"Night"`
	AirAndPollen []AccuWeatherAirAndPollen `json:"AirAndPollen"`
}

type AccuWeatherAstro struct {
	EpochRise *int64 `json:"EpochRise"`
	EpochSet  *int64 `json:"EpochSet"`
}

type AccuWeatherTemperatureRange struct {
	Minimum *AccuWeatherUnitValue `json:"Minimum"`
	Maximum *AccuWeatherUnitValue `json:"Maximum"`
}

type AccuWeatherUnitValue struct {
	Value *float64 `json:"Value"`
	Unit  string   `json:"Unit"`
}

type AccuWeatherHalfDay struct {
	Icon                     *int                  `json:"Icon"`
	IconPhrase               *string               `json:"IconPhrase"`
	LongPhrase               *string               `json:"LongPhrase"`
	PrecipitationProbability *float64              `json:"PrecipitationProbability"`
	ThunderstormProbability  *float64              `json:"ThunderstormProbability"`
	RainProbability          *float64              `json:"RainProbability"`
	SnowProbability          *float64              `json:"SnowProbability"`
	IceProbability           *float64              `json:"IceProbability"`
	TotalLiquid              *AccuWeatherUnitValue `json:"TotalLiquid"`
	Rain                     *AccuWeatherUnitValue `json:"Rain"`
	Snow                     *AccuWeatherUnitValue `json:"Snow"`
	Ice                      *AccuWeatherUnitValue `json:"Ice"`
	HoursOfPrecipitation     *float64              `json:"HoursOfPrecipitation"`
	HoursOfRain              *float64              `json:"HoursOfRain"`
	HoursOfSnow              *float64              `json:"HoursOfSnow"`
	HoursOfIce               *float64              `json:"HoursOfIce"`
	Wind                     *AccuWeatherWind      `json:"Wind"`
	WindGust                 *AccuWeatherWind      `json:"WindGust"`
	CloudCover               *int                  `json:"CloudCover"`
}

type AccuWeatherWind struct {
	Speed     *AccuWeatherUnitValue `json:"Speed"`
	Direction *AccuWeatherDirection `json:"Direction"`
}

type AccuWeatherDirection struct {
	Degrees *float64 `json:"Degrees"`
}

// AccuWeatherAirAndPollen carries both the UV index and the pollen figures.
// Unmeasured pollen arrives as a literal 0 with an empty category instead of
// being omitted.
type AccuWeatherAirAndPollen struct {
	Name          string   `json:"Name"`
	Value         *float64 `json:"Value"`
	Category      string   `json:"Category"`
	CategoryValue *int     `json:"CategoryValue"`
}

type AccuWeatherCurrentResponse struct {
	EpochTime                int64                    `json:"EpochTime"`
	WeatherIcon              *int                     `json:"WeatherIcon"`
	WeatherText              *string                  `json:"WeatherText"`
	Temperature              *AccuWeatherMetricValue  `json:"Temperature"`
	RealFeelTemperature      *AccuWeatherMetricValue  `json:"RealFeelTemperature"`
	RealFeelTemperatureShade *AccuWeatherMetricValue  `json:"RealFeelTemperatureShade"`
	ApparentTemperature      *AccuWeatherMetricValue  `json:"ApparentTemperature"`
	WindChillTemperature     *AccuWeatherMetricValue  `json:"WindChillTemperature"`
	WetBulbTemperature       *AccuWeatherMetricValue  `json:"WetBulbTemperature"`
	DewPoint                 *AccuWeatherMetricValue  `json:"DewPoint"`
	RelativeHumidity         *float64                 `json:"RelativeHumidity"`
	Wind                     *AccuWeatherWind         `json:"Wind"`
	WindGust                 *AccuWeatherWind         `json:"WindGust"`
	UVIndex                  *float64                 `json:"UVIndex"`
	UVIndexText              *string                  `json:"UVIndexText"`
	Pressure                 *AccuWeatherMetricValue  `json:"Pressure"`
	CloudCover               *int                     `json:"CloudCover"`
	Visibility               *AccuWeatherMetricValue  `json:"Visibility"`
}

type AccuWeatherMetricValue struct {
	Metric *AccuWeatherUnitValue `json:"Metric"`
}

type AccuWeatherMinuteCastResponse struct {
	Intervals []AccuWeatherMinuteInterval `json:"Intervals"`
}

type AccuWeatherMinuteInterval struct {
	StartEpochDateTime int64    `json:"StartEpochDateTime"`
	Minute             int      `json:"Minute"`
	Dbz                *float64 `json:"Dbz"`
	ShortPhrase        string   `json:"ShortPhrase"`
}

type AccuWeatherAlertResponse struct {
	AlertID     int64                  `json:"AlertID"`
	Level       *string                `json:"Level"`
	Source      *string                `json:"Source"`
	Description *AccuWeatherLocalized  `json:"Description"`
	Area        []AccuWeatherAlertArea `json:"Area"`
}

type AccuWeatherLocalized struct {
	Localized string `json:"Localized"`
}

type AccuWeatherAlertArea struct {
	EpochStartTime *int64  `json:"EpochStartTime"`
	EpochEndTime   *int64  `json:"EpochEndTime"`
	Text           *string `json:"Text"`
	Summary        *string `json:"Summary"`
}

type AccuWeatherClimoResponse struct {
	Normals *AccuWeatherClimoNormals `json:"Normals"`
}

type AccuWeatherClimoNormals struct {
	Temperatures *AccuWeatherTemperatureRange `json:"Temperatures"`
}

type AccuWeatherErrorResponse struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}
