package particle

import (
	"image/color"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	want := Settings{
		Style:              StyleRandom,
		DisappearSpeed:     0.2,
		SpawnCount:         1,
		StarThrottlePeriod: 5,
	}
	if s != want {
		t.Fatalf("DefaultSettings() = %+v, want %+v", s, want)
	}
}

func TestSettingsClamped(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "in range",
			in:   Settings{Style: StyleStars, DisappearSpeed: 0.3, SpawnCount: 4, StarThrottlePeriod: 2, ThrottleEnabled: true},
			want: Settings{Style: StyleStars, DisappearSpeed: 0.3, SpawnCount: 4, StarThrottlePeriod: 2, ThrottleEnabled: true},
		},
		{
			name: "below range",
			in:   Settings{Style: StyleTrailFade, DisappearSpeed: -1, SpawnCount: -3, StarThrottlePeriod: 0},
			want: Settings{Style: StyleTrailFade, DisappearSpeed: 0.1, SpawnCount: 1, StarThrottlePeriod: 1},
		},
		{
			name: "above range",
			in:   Settings{Style: StyleTrailGrow, DisappearSpeed: 3, SpawnCount: 99, StarThrottlePeriod: 40},
			want: Settings{Style: StyleTrailGrow, DisappearSpeed: 0.7, SpawnCount: 10, StarThrottlePeriod: 10},
		},
		{
			name: "unknown style",
			in:   Settings{Style: Style(12), DisappearSpeed: 0.2, SpawnCount: 1, StarThrottlePeriod: 5},
			want: Settings{Style: StyleRandom, DisappearSpeed: 0.2, SpawnCount: 1, StarThrottlePeriod: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamped(); got != tt.want {
				t.Fatalf("Clamped() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColorConversions(t *testing.T) {
	c := RGBA8(255, 128, 0, 64)
	if got := c.NRGBA(); got != (color.NRGBA{255, 128, 0, 64}) {
		t.Fatalf("NRGBA() = %+v, want round trip", got)
	}
	over := Color{R: 2, G: -1, B: 0.5, A: -0.004}
	if got := over.NRGBA(); got != (color.NRGBA{255, 0, 128, 0}) {
		t.Fatalf("NRGBA() = %+v, want clamped channels", got)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{3, 4}
	if v.Len() != 5 {
		t.Fatalf("Len() = %f, want 5", v.Len())
	}
	if got := v.Normalize(); !near(got.X, 0.6, 1e-6) || !near(got.Y, 0.8, 1e-6) {
		t.Fatalf("Normalize() = %+v, want (0.6, 0.8)", got)
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Fatalf("zero Normalize() = %+v, want zero", got)
	}
	if got := v.Add(Vec2{1, 1}).Scale(2); got != (Vec2{8, 10}) {
		t.Fatalf("Add/Scale = %+v, want (8, 10)", got)
	}
}
