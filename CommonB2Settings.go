package box2d

import "math"

func B2Assert(a bool) {
	if !a {
		panic("B2Assert")
	}
}

const B2_maxFloat = math.MaxFloat64
const B2_epsilon = math.SmallestNonzeroFloat64
const B2_pi = math.Pi

/// @file
/// Global tuning constants based on meters-kilograms-seconds (MKS) units.
///

// Collision

/// The maximum number of contact points between two convex shapes. Do
/// not change this value.
const B2_maxManifoldPoints = 2

/// The maximum number of vertices on a convex polygon.
const B2_maxPolygonVertices = 8

/// This is used to fatten AABBs so that proxies can move by a small
/// amount without the pair being retracted. This is in meters.
const B2_aabbExtension = 0.1

/// A small length used as a collision and constraint tolerance. Usually it is
/// chosen to be numerically significant, but visually insignificant.
const B2_linearSlop = 0.005

/// The radius of the polygon/edge shape skin. This should not be modified.
const B2_polygonRadius = (2.0 * B2_linearSlop)

// Contacts

/// Number of contacts a pool constructs at once when it runs dry.
const B2_contactPoolChunkSize = 3
