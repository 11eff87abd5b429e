package entity

// WeatherCode is the canonical weather classification every provider's
// icon/phenomenon codes are mapped onto.
type WeatherCode string

const (
	WeatherCodeClear        WeatherCode = "CLEAR"
	WeatherCodePartlyCloudy WeatherCode = "PARTLY_CLOUDY"
	WeatherCodeCloudy       WeatherCode = "CLOUDY"
	WeatherCodeRain         WeatherCode = "RAIN"
	WeatherCodeSnow         WeatherCode = "SNOW"
	WeatherCodeSleet        WeatherCode = "SLEET"
	WeatherCodeHail         WeatherCode = "HAIL"
	WeatherCodeWind         WeatherCode = "WIND"
	WeatherCodeFog          WeatherCode = "FOG"
	WeatherCodeHaze         WeatherCode = "HAZE"
	WeatherCodeThunder      WeatherCode = "THUNDER"
	WeatherCodeThunderstorm WeatherCode = "THUNDERSTORM"
)

var weatherCodeDescriptions = map[WeatherCode]string{
	WeatherCodeClear:        "Clear",
	WeatherCodePartlyCloudy: "Partly cloudy",
	WeatherCodeCloudy:       "Cloudy",
	WeatherCodeRain:         "Rain",
	WeatherCodeSnow:         "Snow",
	WeatherCodeSleet:        "Sleet",
	WeatherCodeHail:         "Hail",
	WeatherCodeWind:         "Windy",
	WeatherCodeFog:          "Fog",
	WeatherCodeHaze:         "Haze",
	WeatherCodeThunder:      "Thunder",
	WeatherCodeThunderstorm: "Thunderstorm",
}

// Description returns a short human-readable phrase for the code.
func (c WeatherCode) Description() string {
	return weatherCodeDescriptions[c]
}

// IsValid reports whether the code is one of the canonical values.
func (c WeatherCode) IsValid() bool {
	_, ok := weatherCodeDescriptions[c]
	return ok
}
