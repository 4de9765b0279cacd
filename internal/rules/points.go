// Package rules implements the dashboard's domain logic on top of the entity
// store: leveling math, chore status transitions, payday crediting, and
// template instantiation.
package rules

// PointsPerLevel is the size of one level step.
const PointsPerLevel = 100

// Level derives a child's level from accumulated points: one level per 100
// points, starting at level 1. Negative input is treated as zero.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// Progress returns how far into the current level the points reach, always in
// [0, 99].
func Progress(points int) int {
	if points < 0 {
		points = 0
	}
	return points % PointsPerLevel
}

// PointsToNext returns how many points remain until the next level.
func PointsToNext(points int) int {
	return PointsPerLevel - Progress(points)
}
