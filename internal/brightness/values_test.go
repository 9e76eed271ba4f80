package brightness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/brightness"
)

func TestDdcciValues_CurrentPercentage(t *testing.T) {
	tests := []struct {
		name     string
		values   brightness.DdcciValues
		expected uint32
	}{
		{
			name:     "minimum maps to 0%",
			values:   brightness.DdcciValues{Min: 0, Max: 100, Current: 0},
			expected: 0,
		},
		{
			name:     "maximum maps to 100%",
			values:   brightness.DdcciValues{Min: 0, Max: 100, Current: 100},
			expected: 100,
		},
		{
			name:     "offset range midpoint maps to 50%",
			values:   brightness.DdcciValues{Min: 20, Max: 120, Current: 70},
			expected: 50,
		},
		{
			name:     "narrow range rounds to nearest percent",
			values:   brightness.DdcciValues{Min: 0, Max: 3, Current: 1},
			expected: 33,
		},
		{
			name:     "current below min clamps to 0%",
			values:   brightness.DdcciValues{Min: 10, Max: 90, Current: 5},
			expected: 0,
		},
		{
			name:     "current above max clamps to 100%",
			values:   brightness.DdcciValues{Min: 10, Max: 90, Current: 95},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.values.CurrentPercentage()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDdcciValues_EmptyRange(t *testing.T) {
	v := brightness.DdcciValues{Min: 50, Max: 50, Current: 50}

	_, err := v.CurrentPercentage()
	assert.ErrorIs(t, err, brightness.ErrUnsupportedRange)

	_, err = v.RawFromPercentage(40)
	assert.ErrorIs(t, err, brightness.ErrUnsupportedRange)
}

func TestDdcciValues_RawFromPercentage(t *testing.T) {
	tests := []struct {
		name       string
		values     brightness.DdcciValues
		percentage uint32
		expected   uint32
	}{
		{
			name:       "0% maps to min",
			values:     brightness.DdcciValues{Min: 20, Max: 120},
			percentage: 0,
			expected:   20,
		},
		{
			name:       "100% maps to max",
			values:     brightness.DdcciValues{Min: 20, Max: 120},
			percentage: 100,
			expected:   120,
		},
		{
			name:       "50% maps to range midpoint",
			values:     brightness.DdcciValues{Min: 20, Max: 120},
			percentage: 50,
			expected:   70,
		},
		{
			name:       "values above 100 are treated as 100",
			values:     brightness.DdcciValues{Min: 0, Max: 100},
			percentage: 250,
			expected:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.values.RawFromPercentage(tt.percentage)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Converting a raw value to a percentage and back must land within one
// percentage-rounding step of where it started, for any raw range.
func TestDdcciValues_RoundTrip(t *testing.T) {
	ranges := []brightness.DdcciValues{
		{Min: 0, Max: 100},
		{Min: 0, Max: 255},
		{Min: 10, Max: 90},
		{Min: 100, Max: 10000},
	}

	for _, r := range ranges {
		for raw := r.Min; raw <= r.Max; raw += 1 + (r.Max-r.Min)/200 {
			v := brightness.DdcciValues{Min: r.Min, Max: r.Max, Current: raw}
			pct, err := v.CurrentPercentage()
			require.NoError(t, err)

			back, err := v.RawFromPercentage(pct)
			require.NoError(t, err)
			assert.InDelta(t, float64(raw), float64(back), 1+float64(r.Max-r.Min)/200,
				"range [%d,%d] raw %d", r.Min, r.Max, raw)
		}
	}
}

func TestSupportedLevels_Nearest(t *testing.T) {
	tests := []struct {
		name       string
		levels     brightness.SupportedLevels
		percentage uint32
		expected   uint8
	}{
		{
			name:       "exact match",
			levels:     brightness.SupportedLevels{0, 25, 50, 75, 100},
			percentage: 50,
			expected:   50,
		},
		{
			name:       "rounds down to closer level",
			levels:     brightness.SupportedLevels{0, 25, 50, 75, 100},
			percentage: 60,
			expected:   50,
		},
		{
			name:       "rounds up to closer level",
			levels:     brightness.SupportedLevels{0, 25, 50, 75, 100},
			percentage: 70,
			expected:   75,
		},
		{
			name:       "equidistant prefers the lower level",
			levels:     brightness.SupportedLevels{40, 60},
			percentage: 50,
			expected:   40,
		},
		{
			name:       "equidistant prefers lower regardless of order",
			levels:     brightness.SupportedLevels{60, 40},
			percentage: 50,
			expected:   40,
		},
		{
			name:       "above all levels picks the highest",
			levels:     brightness.SupportedLevels{0, 30, 60},
			percentage: 100,
			expected:   60,
		},
		{
			name:       "empty set maps to 0",
			levels:     brightness.SupportedLevels{},
			percentage: 50,
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.levels.Nearest(tt.percentage))
		})
	}
}

// The result is always a member of the set, and no member is strictly closer.
func TestSupportedLevels_NearestIsMinimal(t *testing.T) {
	levels := brightness.SupportedLevels{3, 17, 44, 80, 97}
	for pct := uint32(0); pct <= 100; pct++ {
		got := levels.Nearest(pct)
		assert.Contains(t, levels, got)

		dist := func(l uint8) int64 {
			d := int64(l) - int64(pct)
			if d < 0 {
				d = -d
			}
			return d
		}
		for _, l := range levels {
			assert.GreaterOrEqual(t, dist(l), dist(got), "level %d closer than %d for %d%%", l, got, pct)
		}
	}
}

func TestAlphaForSlider(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected uint8
	}{
		{name: "0 is fully transparent", value: 0, expected: 0},
		{name: "-50 rounds to 128", value: -50, expected: 128},
		{name: "-100 is fully opaque", value: -100, expected: 255},
		{name: "-1 is barely visible", value: -1, expected: 3},
		{name: "below -100 clamps to opaque", value: -150, expected: 255},
		{name: "positive values clamp to transparent", value: 40, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, brightness.AlphaForSlider(tt.value))
		})
	}
}
