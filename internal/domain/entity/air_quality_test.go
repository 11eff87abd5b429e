package entity

import "testing"

func fptr(v float64) *float64 { return &v }

func TestAirQualityGlobalIndex(t *testing.T) {
	tests := []struct {
		name string
		aq   AirQuality
		want *int
	}{
		{
			name: "nothing measured yields nil",
			aq:   AirQuality{},
			want: nil,
		},
		{
			name: "measured zero yields band zero, not nil",
			aq:   AirQuality{PM25: fptr(0)},
			want: iptr(0),
		},
		{
			name: "single pollutant drives the index",
			aq:   AirQuality{PM25: fptr(60)}, // band 4 on PM2.5
			want: iptr(4),
		},
		{
			name: "maximum wins across pollutants",
			aq: AirQuality{
				PM25: fptr(5),  // band 0
				O3:   fptr(60), // band 1
				NO2:  fptr(95), // band 2
			},
			want: iptr(2),
		},
		{
			name: "unmeasured pollutants do not dilute the maximum",
			aq: AirQuality{
				SO2: fptr(800), // topmost band
			},
			want: iptr(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.aq.GlobalIndex()
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("GlobalIndex() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("GlobalIndex() = %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestAirQualityGlobalLevel(t *testing.T) {
	if level := (AirQuality{}).GlobalLevel(); level != nil {
		t.Errorf("GlobalLevel() on empty air quality = %q, want nil", *level)
	}

	aq := AirQuality{PM10: fptr(160)}
	level := aq.GlobalLevel()
	if level == nil || *level != "Dangerous" {
		t.Errorf("GlobalLevel() = %v, want Dangerous", level)
	}
}

func TestAirQualityIsValid(t *testing.T) {
	if (AirQuality{}).IsValid() {
		t.Error("IsValid() on empty air quality = true, want false")
	}
	if !(AirQuality{CO: fptr(0)}).IsValid() {
		t.Error("IsValid() with measured zero = false, want true")
	}
}

func iptr(v int) *int { return &v }
