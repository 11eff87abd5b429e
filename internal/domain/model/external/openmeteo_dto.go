package external

// Open-Meteo forecast API response structures. Field names follow the
// provider's snake_case wire format; units are the provider defaults
// (°C, km/h, hPa, mm) unless noted.

type OpenMeteoForecastResponse struct {
	Timezone   string              `json:"timezone"`
	Current    *OpenMeteoCurrent   `json:"current"`
	Hourly     *OpenMeteoHourly    `json:"hourly"`
	Daily      *OpenMeteoDaily     `json:"daily"`
	Minutely15 *OpenMeteoMinutely  `json:"minutely_15"`
}

type OpenMeteoCurrent struct {
	Time                int64    `json:"time"`
	Temperature2m       *float64 `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	RelativeHumidity2m  *float64 `json:"relative_humidity_2m"`
	DewPoint2m          *float64 `json:"dew_point_2m"`
	SurfacePressure     *float64 `json:"surface_pressure"`
	CloudCover          *int     `json:"cloud_cover"`
	WindSpeed10m        *float64 `json:"wind_speed_10m"`
	WindDirection10m    *float64 `json:"wind_direction_10m"`
	WindGusts10m        *float64 `json:"wind_gusts_10m"`
	WeatherCode         *int     `json:"weather_code"`
	UVIndex             *float64 `json:"uv_index"`
	Visibility          *float64 `json:"visibility"`
}

type OpenMeteoHourly struct {
	Time                     []int64    `json:"time"`
	Temperature2m            []*float64 `json:"temperature_2m"`
	ApparentTemperature      []*float64 `json:"apparent_temperature"`
	WeatherCode              []*int     `json:"weather_code"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	Precipitation            []*float64 `json:"precipitation"`
	Rain                     []*float64 `json:"rain"`
	Showers                  []*float64 `json:"showers"`
	Snowfall                 []*float64 `json:"snowfall"`
	WindSpeed10m             []*float64 `json:"wind_speed_10m"`
	WindDirection10m         []*float64 `json:"wind_direction_10m"`
	WindGusts10m             []*float64 `json:"wind_gusts_10m"`
	RelativeHumidity2m       []*float64 `json:"relative_humidity_2m"`
	DewPoint2m               []*float64 `json:"dew_point_2m"`
	SurfacePressure          []*float64 `json:"surface_pressure"`
	CloudCover               []*int     `json:"cloud_cover"`
	Visibility               []*float64 `json:"visibility"`
	UVIndex                  []*float64 `json:"uv_index"`
	IsDay                    []*int     `json:"is_day"`
}

type OpenMeteoDaily struct {
	Time                        []int64    `json:"time"`
	WeatherCode                 []*int     `json:"weather_code"`
	Temperature2mMax            []*float64 `json:"temperature_2m_max"`
	Temperature2mMin            []*float64 `json:"temperature_2m_min"`
	ApparentTemperatureMax      []*float64 `json:"apparent_temperature_max"`
	ApparentTemperatureMin      []*float64 `json:"apparent_temperature_min"`
	Sunrise                     []*int64   `json:"sunrise"`
	Sunset                      []*int64   `json:"sunset"`
	PrecipitationSum            []*float64 `json:"precipitation_sum"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
	WindSpeed10mMax             []*float64 `json:"wind_speed_10m_max"`
	WindGusts10mMax             []*float64 `json:"wind_gusts_10m_max"`
	UVIndexMax                  []*float64 `json:"uv_index_max"`
}

type OpenMeteoMinutely struct {
	Time          []int64    `json:"time"`
	Precipitation []*float64 `json:"precipitation"`
}

// OpenMeteoAirQualityResponse is the air-quality API response; pollutant
// concentrations are in µg/m³.
type OpenMeteoAirQualityResponse struct {
	Current *OpenMeteoAirQualityCurrent `json:"current"`
	Hourly  *OpenMeteoAirQualityHourly  `json:"hourly"`
}

type OpenMeteoAirQualityCurrent struct {
	Time            int64    `json:"time"`
	PM10            *float64 `json:"pm10"`
	PM25            *float64 `json:"pm2_5"`
	CarbonMonoxide  *float64 `json:"carbon_monoxide"`
	NitrogenDioxide *float64 `json:"nitrogen_dioxide"`
	SulphurDioxide  *float64 `json:"sulphur_dioxide"`
	Ozone           *float64 `json:"ozone"`
}

type OpenMeteoAirQualityHourly struct {
	Time            []int64    `json:"time"`
	PM10            []*float64 `json:"pm10"`
	PM25            []*float64 `json:"pm2_5"`
	CarbonMonoxide  []*float64 `json:"carbon_monoxide"`
	NitrogenDioxide []*float64 `json:"nitrogen_dioxide"`
	SulphurDioxide  []*float64 `json:"sulphur_dioxide"`
	Ozone           []*float64 `json:"ozone"`
}

// OpenMeteoGeocodingResponse is the geocoding API response used for reverse
// geocoding.
type OpenMeteoGeocodingResponse struct {
	Results []OpenMeteoGeocodingResult `json:"results"`
}

type OpenMeteoGeocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
	Timezone  string  `json:"timezone"`
}

type OpenMeteoErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
