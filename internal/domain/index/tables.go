package index

// UVScale follows the WHO UV index bands (2/5/7/10).
var UVScale = Scale{
	Thresholds: []float64{2, 5, 7, 10},
	Levels:     []string{"Low", "Moderate", "High", "Very High", "Extreme"},
	Colors:     []string{"#299501", "#f7e401", "#f95901", "#d90011", "#6c49cb"},
}

// WindScale classifies wind speed in m/s on the Beaufort bands.
var WindScale = Scale{
	Thresholds: []float64{0.5, 1.5, 3.3, 5.5, 7.9, 10.7, 13.8, 17.1, 20.7, 24.4, 28.4, 32.6},
	Levels: []string{
		"Calm", "Light air", "Light breeze", "Gentle breeze", "Moderate breeze",
		"Fresh breeze", "Strong breeze", "Near gale", "Gale", "Strong gale",
		"Storm", "Violent storm", "Hurricane",
	},
}

var aqLevels = []string{"Excellent", "Fair", "Poor", "Unhealthy", "Very Unhealthy", "Dangerous"}
var aqColors = []string{"#50f0e6", "#50ccaa", "#f0e641", "#ff5050", "#960032", "#7d2181"}

// Per-pollutant concentration bands in µg/m³ (CO in mg/m³), following the
// European air quality index breakpoints.
var (
	PM25Scale = Scale{Thresholds: []float64{10, 20, 25, 50, 75}, Levels: aqLevels, Colors: aqColors}
	PM10Scale = Scale{Thresholds: []float64{20, 40, 50, 100, 150}, Levels: aqLevels, Colors: aqColors}
	NO2Scale  = Scale{Thresholds: []float64{40, 90, 120, 230, 340}, Levels: aqLevels, Colors: aqColors}
	O3Scale   = Scale{Thresholds: []float64{50, 100, 130, 240, 380}, Levels: aqLevels, Colors: aqColors}
	SO2Scale  = Scale{Thresholds: []float64{100, 200, 350, 500, 750}, Levels: aqLevels, Colors: aqColors}
	COScale   = Scale{Thresholds: []float64{5, 10, 15, 30, 50}, Levels: aqLevels, Colors: aqColors}
)

// PollenScale classifies a pollen concentration in grains/m³. The same bands
// apply to every taxon.
var PollenScale = Scale{
	Thresholds: []float64{5, 25, 100, 300},
	Levels:     []string{"Very Low", "Low", "Moderate", "High", "Very High"},
	Colors:     []string{"#c9e8ba", "#78b857", "#f7e401", "#f95901", "#d90011"},
}
