package box2d

import (
	"math"
)

const B2_nullFeature uint8 = math.MaxUint8

var B2ContactFeature_Type = struct {
	E_vertex uint8
	E_face   uint8
}{
	E_vertex: 0,
	E_face:   1,
}

/// The features that intersect to form the contact point
/// This must be 4 bytes or less.
type B2ContactFeature struct {
	IndexA uint8 ///< Feature index on shapeA
	IndexB uint8 ///< Feature index on shapeB
	TypeA  uint8 ///< The feature type on shapeA
	TypeB  uint8 ///< The feature type on shapeB
}

/// Contact ids to facilitate warm starting.
type B2ContactID B2ContactFeature

/// Used to quickly compare contact ids.
func (v B2ContactID) Key() uint32 {
	var key uint32 = 0
	key |= uint32(v.IndexA)
	key |= uint32(v.IndexB) << 8
	key |= uint32(v.TypeA) << 16
	key |= uint32(v.TypeB) << 24
	return key
}

func (v *B2ContactID) SetKey(key uint32) {
	v.IndexA = uint8(key & 0xFF)
	v.IndexB = uint8(key >> 8 & 0xFF)
	v.TypeA = uint8(key >> 16 & 0xFF)
	v.TypeB = uint8(key >> 24 & 0xFF)
}

/// A manifold point is a contact point belonging to a contact
/// manifold. It holds details related to the geometry and dynamics
/// of the contact points.
/// The local point usage depends on the manifold type:
/// -e_circles: the local center of circleB
/// -e_faceA: the local center of cirlceB or the clip point of polygonB
/// -e_faceB: the clip point of polygonA
/// This structure is stored across time steps, so we keep it small.
/// Note: the impulses are used for internal caching and may not
/// provide reliable contact forces, especially for high speed collisions.
type B2ManifoldPoint struct {
	LocalPoint     B2Vec2      ///< usage depends on manifold type
	NormalImpulse  float64     ///< the non-penetration impulse
	TangentImpulse float64     ///< the friction impulse
	Id             B2ContactID ///< uniquely identifies a contact point between two shapes
}

var B2Manifold_Type = struct {
	E_circles uint8
	E_faceA   uint8
	E_faceB   uint8
}{
	E_circles: 0,
	E_faceA:   1,
	E_faceB:   2,
}

/// A manifold for two touching convex shapes.
/// The local point usage depends on the manifold type:
/// -e_circles: the local center of circleA
/// -e_faceA: the center of faceA
/// -e_faceB: the center of faceB
/// Similarly the local normal usage:
/// -e_circles: not used
/// -e_faceA: the normal on polygonA
/// -e_faceB: the normal on polygonB
/// This structure is stored across time steps, so we keep it small.
type B2Manifold struct {
	Points      [B2_maxManifoldPoints]B2ManifoldPoint ///< the points of contact
	LocalNormal B2Vec2                                ///< not use for Type::e_points
	LocalPoint  B2Vec2                                ///< usage depends on manifold type
	Type        uint8                                 // B2Manifold_Type
	PointCount  int                                   ///< the number of manifold points
}

/// This is used to compute the current state of a contact manifold.
type B2WorldManifold struct {
	Normal      B2Vec2                        ///< world vector pointing from A to B
	Points      [B2_maxManifoldPoints]B2Vec2  ///< world contact point (point of intersection)
	Separations [B2_maxManifoldPoints]float64 ///< a negative value indicates overlap, in meters
}

/// Evaluate the manifold with supplied transforms. This assumes
/// modest motion from the original state. This does not change the
/// point count, impulses, etc. The radii must come from the shapes
/// that generated the manifold.
func (wm *B2WorldManifold) Initialize(manifold *B2Manifold, xfA B2Transform, radiusA float64, xfB B2Transform, radiusB float64) {
	if manifold.PointCount == 0 {
		return
	}

	switch manifold.Type {
	case B2Manifold_Type.E_circles:
		wm.Normal = MakeB2Vec2(1.0, 0.0)
		pointA := B2TransformVec2Mul(xfA, manifold.LocalPoint)
		pointB := B2TransformVec2Mul(xfB, manifold.Points[0].LocalPoint)
		if B2Vec2DistanceSquared(pointA, pointB) > B2_epsilon*B2_epsilon {
			wm.Normal = pointB.Sub(pointA)
			B2Vec2Normalize(&wm.Normal)
		}

		cA := pointA.Add(wm.Normal.Mul(radiusA))
		cB := pointB.Sub(wm.Normal.Mul(radiusB))
		wm.Points[0] = cA.Add(cB).Mul(0.5)
		wm.Separations[0] = cB.Sub(cA).Dot(wm.Normal)

	case B2Manifold_Type.E_faceA:
		wm.Normal = B2RotVec2Mul(xfA.Q, manifold.LocalNormal)
		planePoint := B2TransformVec2Mul(xfA, manifold.LocalPoint)

		for i := 0; i < manifold.PointCount; i++ {
			clipPoint := B2TransformVec2Mul(xfB, manifold.Points[i].LocalPoint)
			cA := clipPoint.Add(wm.Normal.Mul(radiusA - clipPoint.Sub(planePoint).Dot(wm.Normal)))
			cB := clipPoint.Sub(wm.Normal.Mul(radiusB))
			wm.Points[i] = cA.Add(cB).Mul(0.5)
			wm.Separations[i] = cB.Sub(cA).Dot(wm.Normal)
		}

	case B2Manifold_Type.E_faceB:
		wm.Normal = B2RotVec2Mul(xfB.Q, manifold.LocalNormal)
		planePoint := B2TransformVec2Mul(xfB, manifold.LocalPoint)

		for i := 0; i < manifold.PointCount; i++ {
			clipPoint := B2TransformVec2Mul(xfA, manifold.Points[i].LocalPoint)
			cB := clipPoint.Add(wm.Normal.Mul(radiusB - clipPoint.Sub(planePoint).Dot(wm.Normal)))
			cA := clipPoint.Sub(wm.Normal.Mul(radiusA))
			wm.Points[i] = cA.Add(cB).Mul(0.5)
			wm.Separations[i] = cA.Sub(cB).Dot(wm.Normal)
		}

		// Ensure normal points from A to B.
		wm.Normal = wm.Normal.Mul(-1.0)
	}
}

/// This is used for determining the state of contact points.
var B2PointState = struct {
	B2_nullState    uint8 ///< point does not exist
	B2_addState     uint8 ///< point was added in the update
	B2_persistState uint8 ///< point persisted across the update
	B2_removeState  uint8 ///< point was removed in the update
}{
	B2_nullState:    0,
	B2_addState:     1,
	B2_persistState: 2,
	B2_removeState:  3,
}

/// Compute the point states given two manifolds. The states pertain to the transition from manifold1
/// to manifold2. So state1 is either persist or remove while state2 is either add or persist.
func B2GetPointStates(state1 *[B2_maxManifoldPoints]uint8, state2 *[B2_maxManifoldPoints]uint8, manifold1 B2Manifold, manifold2 B2Manifold) {
	for i := 0; i < B2_maxManifoldPoints; i++ {
		state1[i] = B2PointState.B2_nullState
		state2[i] = B2PointState.B2_nullState
	}

	// Detect persists and removes.
	for i := 0; i < manifold1.PointCount; i++ {
		key := manifold1.Points[i].Id.Key()

		state1[i] = B2PointState.B2_removeState

		for j := 0; j < manifold2.PointCount; j++ {
			if manifold2.Points[j].Id.Key() == key {
				state1[i] = B2PointState.B2_persistState
				break
			}
		}
	}

	// Detect persists and adds.
	for i := 0; i < manifold2.PointCount; i++ {
		key := manifold2.Points[i].Id.Key()

		state2[i] = B2PointState.B2_addState

		for j := 0; j < manifold1.PointCount; j++ {
			if manifold1.Points[j].Id.Key() == key {
				state2[i] = B2PointState.B2_persistState
				break
			}
		}
	}
}

/// Used for computing contact manifolds.
type B2ClipVertex struct {
	V  B2Vec2
	Id B2ContactID
}

/// Clipping for contact manifolds.
func B2ClipSegmentToLine(vOut *[2]B2ClipVertex, vIn *[2]B2ClipVertex, normal B2Vec2, offset float64, vertexIndexA int) int {
	// Start with no output points
	numOut := 0

	// Calculate the distance of end points to the line
	distance0 := normal.Dot(vIn[0].V) - offset
	distance1 := normal.Dot(vIn[1].V) - offset

	// If the points are behind the plane
	if distance0 <= 0.0 {
		vOut[numOut] = vIn[0]
		numOut++
	}

	if distance1 <= 0.0 {
		vOut[numOut] = vIn[1]
		numOut++
	}

	// If the points are on different sides of the plane
	if distance0*distance1 < 0.0 {
		// Find intersection point of edge and plane
		interp := distance0 / (distance0 - distance1)
		vOut[numOut].V = vIn[0].V.Add(vIn[1].V.Sub(vIn[0].V).Mul(interp))

		// VertexA is hitting edgeB.
		vOut[numOut].Id.IndexA = uint8(vertexIndexA)
		vOut[numOut].Id.IndexB = vIn[0].Id.IndexB
		vOut[numOut].Id.TypeA = B2ContactFeature_Type.E_vertex
		vOut[numOut].Id.TypeB = B2ContactFeature_Type.E_face
		numOut++
	}

	return numOut
}

/// Determine if two generic shapes overlap. The shapes are reduced to their
/// convex cores and the core distance is compared against the summed radii.
func B2TestOverlapShapes(shapeA B2ShapeInterface, shapeB B2ShapeInterface, xfA B2Transform, xfB B2Transform) bool {
	var coreA, coreB [B2_maxPolygonVertices]B2Vec2
	countA := shapeA.ComputeCore(&coreA, xfA)
	countB := shapeB.ComputeCore(&coreB, xfB)

	radius := shapeA.GetRadius() + shapeB.GetRadius()
	distance := b2CoreDistance(coreA[:countA], coreB[:countB])
	return distance <= radius
}

// b2CoreDistance returns the distance between two convex point sets
// (point, segment or polygon), zero when they intersect.
func b2CoreDistance(vsA []B2Vec2, vsB []B2Vec2) float64 {
	if b2CoresIntersect(vsA, vsB) {
		return 0.0
	}

	// Disjoint convex sets are closest at a vertex/edge pair.
	best := B2_maxFloat
	for _, p := range vsA {
		best = math.Min(best, b2PointCoreDistance(p, vsB))
	}
	for _, p := range vsB {
		best = math.Min(best, b2PointCoreDistance(p, vsA))
	}
	return best
}

func b2PointCoreDistance(p B2Vec2, vs []B2Vec2) float64 {
	if len(vs) == 1 {
		return p.Sub(vs[0]).Len()
	}

	best := B2_maxFloat
	for i := range vs {
		a := vs[i]
		b := vs[(i+1)%len(vs)]
		e := b.Sub(a)
		t := 0.0
		if den := e.Dot(e); den > B2_epsilon {
			t = math.Max(0.0, math.Min(1.0, p.Sub(a).Dot(e)/den))
		}
		best = math.Min(best, p.Sub(a.Add(e.Mul(t))).Len())
	}
	return best
}

// Separating axis test over the edge normals and, for segments, the edge
// direction of both cores.
func b2CoresIntersect(vsA []B2Vec2, vsB []B2Vec2) bool {
	if len(vsA) == 1 && len(vsB) == 1 {
		return B2Vec2DistanceSquared(vsA[0], vsB[0]) <= B2_epsilon
	}

	return !b2HasSeparatingAxis(vsA, vsA, vsB) && !b2HasSeparatingAxis(vsB, vsA, vsB)
}

func b2HasSeparatingAxis(axisSource []B2Vec2, vsA []B2Vec2, vsB []B2Vec2) bool {
	count := len(axisSource)
	if count < 2 {
		return false
	}

	edges := count
	if count == 2 {
		edges = 1
	}

	for i := 0; i < edges; i++ {
		e := axisSource[(i+1)%count].Sub(axisSource[i])
		axes := [2]B2Vec2{B2Vec2CrossVectorScalar(e, 1.0), e}
		axisCount := 1
		if count == 2 {
			axisCount = 2
		}

		for k := 0; k < axisCount; k++ {
			minA, maxA := b2Project(axes[k], vsA)
			minB, maxB := b2Project(axes[k], vsB)
			if maxA < minB || maxB < minA {
				return true
			}
		}
	}

	return false
}

func b2Project(axis B2Vec2, vs []B2Vec2) (float64, float64) {
	lo := B2_maxFloat
	hi := -B2_maxFloat
	for _, v := range vs {
		d := axis.Dot(v)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
