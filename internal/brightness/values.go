// SPDX-License-Identifier: AGPL-3.0-only

// Package brightness provides the numeric translation between normalized
// 0-100 percentages and the two hardware value domains: the monitor-defined
// raw range of DDC/CI displays and the discrete supported levels of
// IOCTL-driven internal panels.
package brightness

import (
	"errors"
	"math"
)

// ErrUnsupportedRange is returned when a DDC/CI monitor reports an empty
// brightness range (min == max). Such a monitor cannot be controlled through
// this backend.
var ErrUnsupportedRange = errors.New("monitor reports an empty brightness range")

// DdcciValues is the raw brightness triple reported by a DDC/CI monitor.
type DdcciValues struct {
	Min     uint32
	Max     uint32
	Current uint32
}

// CurrentPercentage normalizes the current raw value to a 0-100 percentage.
func (v DdcciValues) CurrentPercentage() (uint32, error) {
	if v.Max <= v.Min {
		return 0, ErrUnsupportedRange
	}
	current := v.Current
	if current < v.Min {
		current = v.Min
	}
	if current > v.Max {
		current = v.Max
	}
	span := float64(v.Max - v.Min)
	return uint32(math.Round(float64(current-v.Min) / span * 100)), nil
}

// RawFromPercentage reconstructs the raw value for a target percentage by
// linear interpolation over the monitor's range. Percentages above 100 are
// treated as 100%.
func (v DdcciValues) RawFromPercentage(percentage uint32) (uint32, error) {
	if v.Max <= v.Min {
		return 0, ErrUnsupportedRange
	}
	if percentage > 100 {
		percentage = 100
	}
	span := float64(v.Max - v.Min)
	return uint32(math.Round(float64(percentage)/100*span)) + v.Min, nil
}

// SupportedLevels is the unordered set of discrete 0-100 levels an internal
// panel's firmware accepts.
type SupportedLevels []uint8

// Nearest returns the supported level closest to the requested percentage.
// When two levels are equidistant the lower one wins, so the result does not
// depend on the order the firmware reports the levels in. An empty set maps
// to 0.
func (l SupportedLevels) Nearest(percentage uint32) uint8 {
	var best uint8
	bestDist := int64(math.MaxInt64)
	for _, level := range l {
		dist := int64(level) - int64(percentage)
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist || (dist == bestDist && level < best) {
			best = level
			bestDist = dist
		}
	}
	return best
}

// AlphaForSlider maps a negative slider value in [-100, 0) to the overlay
// alpha channel: -100 is fully opaque black (255), 0 is fully transparent.
func AlphaForSlider(value int) uint8 {
	if value > 0 {
		value = 0
	}
	if value < -100 {
		value = -100
	}
	return uint8(math.Round(float64(-value) * 2.55))
}
