// Package entity provides the player pose and its movement controller.
package entity

import "math"

// Pose is the player's continuous position and bearing. X and Y are in
// map-cell units; Bearing is in degrees and deliberately unnormalized, since
// the trig downstream handles any real-valued angle.
type Pose struct {
	X, Y    float64
	Bearing float64
}

// NewCenteredPose returns the starting pose for a map of the given
// dimensions: the center cell plus a half-cell offset, facing up the map.
func NewCenteredPose(mapWidth, mapHeight int) *Pose {
	return &Pose{
		X:       float64(mapWidth/2) + 0.5,
		Y:       float64(mapHeight/2) + 0.5,
		Bearing: 270,
	}
}

// BearingRad returns the bearing in radians.
func (p *Pose) BearingRad() float64 {
	return p.Bearing * math.Pi / 180
}

// Position returns the current x, y coordinates.
func (p *Pose) Position() (float64, float64) {
	return p.X, p.Y
}
