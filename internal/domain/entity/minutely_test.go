package entity

import (
	"math"
	"testing"
)

func TestIntensityFromDbz(t *testing.T) {
	tests := []struct {
		name string
		dbz  int
		want float64
	}{
		{name: "negative reflectivity is dry", dbz: -10, want: 0},
		{name: "zero reflectivity is dry", dbz: 0, want: 0},
		{name: "five dbz is still dry", dbz: 5, want: 0},
		{name: "light rain", dbz: 20, want: math.Pow(math.Pow(10, 2)/200, 5.0/8.0)},
		{name: "heavy rain", dbz: 50, want: math.Pow(math.Pow(10, 5)/200, 5.0/8.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntensityFromDbz(tt.dbz)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IntensityFromDbz(%d) = %f, want %f", tt.dbz, got, tt.want)
			}
		})
	}
}

func TestDbzFromIntensity(t *testing.T) {
	if got := DbzFromIntensity(0); got != 0 {
		t.Errorf("DbzFromIntensity(0) = %d, want 0", got)
	}
	if got := DbzFromIntensity(-1); got != 0 {
		t.Errorf("DbzFromIntensity(-1) = %d, want 0", got)
	}

	// Above the dry cutoff the conversion must round-trip.
	for _, dbz := range []int{10, 23, 35, 47, 60} {
		intensity := IntensityFromDbz(dbz)
		if got := DbzFromIntensity(intensity); got != dbz {
			t.Errorf("DbzFromIntensity(IntensityFromDbz(%d)) = %d, want %d", dbz, got, dbz)
		}
	}
}

func TestMinutelyPrecipitationIntensity(t *testing.T) {
	if got := (Minutely{}).PrecipitationIntensity(); got != nil {
		t.Errorf("PrecipitationIntensity() without reflectivity = %v, want nil", *got)
	}

	dbz := 5
	m := Minutely{Dbz: &dbz}
	if got := m.PrecipitationIntensity(); got == nil || *got != 0 {
		t.Errorf("PrecipitationIntensity() at 5 dbz = %v, want 0", got)
	}
}
