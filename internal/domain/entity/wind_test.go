package entity

import "testing"

func TestWindDirection(t *testing.T) {
	tests := []struct {
		name   string
		degree *float64
		want   string
	}{
		{name: "north", degree: fptr(0), want: "N"},
		{name: "wraps past north", degree: fptr(355), want: "N"},
		{name: "east", degree: fptr(90), want: "E"},
		{name: "south west", degree: fptr(225), want: "SW"},
		{name: "sector boundary rounds up", degree: fptr(11.25), want: "NNE"},
		{name: "variable wind", degree: fptr(-1), want: "VRB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wind{Degree: tt.degree}.Direction()
			if got == nil || *got != tt.want {
				t.Errorf("Direction() = %v, want %q", got, tt.want)
			}
		})
	}

	if got := (Wind{}).Direction(); got != nil {
		t.Errorf("Direction() without degree = %q, want nil", *got)
	}
}

func TestWindLevel(t *testing.T) {
	if got := (Wind{}).Level(); got != nil {
		t.Errorf("Level() without speed = %q, want nil", *got)
	}

	tests := []struct {
		speed float64
		want  string
	}{
		{speed: 0.2, want: "Calm"},
		{speed: 6, want: "Moderate breeze"},
		{speed: 40, want: "Hurricane"},
	}
	for _, tt := range tests {
		got := Wind{Speed: &tt.speed}.Level()
		if got == nil || *got != tt.want {
			t.Errorf("Level() for %.1f m/s = %v, want %q", tt.speed, got, tt.want)
		}
	}
}

func TestTemperatureFeelsLike(t *testing.T) {
	if got := (Temperature{}).FeelsLike(); got != nil {
		t.Errorf("FeelsLike() on empty temperature = %v, want nil", *got)
	}

	// RealFeel outranks every other variant.
	temp := Temperature{RealFeel: fptr(-2), Apparent: fptr(3), WindChill: fptr(-8)}
	if got := temp.FeelsLike(); got == nil || *got != -2 {
		t.Errorf("FeelsLike() = %v, want -2", got)
	}

	// Lower-priority variants step in when the better ones are absent.
	temp = Temperature{WindChill: fptr(-8), WetBulb: fptr(1)}
	if got := temp.FeelsLike(); got == nil || *got != -8 {
		t.Errorf("FeelsLike() = %v, want -8", got)
	}
}
