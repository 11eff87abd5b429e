package api

// Unit conversions applied at the converter boundary. Everything crossing
// into the canonical model is °C, hPa, m/s, m or mm.

func kmhToMs(v float64) float64 { return v / 3.6 }

func mphToMs(v float64) float64 { return v * 0.44704 }

func knotsToMs(v float64) float64 { return v * 0.514444 }

func fahrenheitToCelsius(v float64) float64 { return (v - 32) * 5 / 9 }

func paToHpa(v float64) float64 { return v / 100 }

func inHgToHpa(v float64) float64 { return v * 33.8639 }

func kmToM(v float64) float64 { return v * 1000 }

func miToM(v float64) float64 { return v * 1609.344 }

func cmToMm(v float64) float64 { return v * 10 }

// ptr helpers used by the converters when lifting raw payload values into
// the optional canonical fields.

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func convertPtr(v *float64, convert func(float64) float64) *float64 {
	if v == nil {
		return nil
	}
	converted := convert(*v)
	return &converted
}
