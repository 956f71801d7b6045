// Package contour provides a 2D computational-geometry kernel for polylines
// whose segments may be straight lines or circular arcs.
//
// # Arc polylines
//
// The central type is [Polyline], an ordered sequence of [Vertex] values with
// an optional closing segment. Each vertex carries a position and a bulge
// value encoding the arc from it to the next vertex: a bulge of zero means a
// straight segment, a nonzero bulge is tan(Δ/4) of the arc's signed included
// angle Δ, positive for an anticlockwise sweep. This is the vertex format used
// by DXF lightweight polylines and CAM toolpath systems.
//
// # Features
//
// We provide the following notable features:
//
//   - Metric evaluation: length, signed area, winding number, bounding box,
//     orientation (see [Polyline.Length], [Polyline.Area],
//     [Polyline.WindingNumber], [Polyline.BoundingBox],
//     [Polyline.Orientation])
//   - Spatial queries: closest point and point at path length (see
//     [Polyline.ClosestPoint], [Polyline.PointAtLength])
//   - Intersection enumeration, including coincident overlaps (see
//     [Polyline.FindIntersects], [Polyline.HasSelfIntersect])
//   - Parallel offsetting with corner joining and self-intersection cleanup
//     (see [Polyline.Offset])
//   - Boolean set operations between closed polylines (see
//     [Polyline.Boolean] and the [Union], [Intersection], [Difference], and
//     [SymmetricDifference] operations)
//   - Containment classification (see [Polyline.Contains])
//   - Arc linearization (see [Polyline.ToLines])
//   - Grouping of closed polylines into boundaries and holes (see [Shape])
//
// # Conventions
//
// Coordinates are y-up: positive signed area and winding mean anticlockwise
// traversal. For an anticlockwise closed polyline, [Polyline.Offset] with a
// positive distance offsets inward and a negative distance offsets outward.
//
// All point-coincidence comparisons take an explicit tolerance; [DefaultEps]
// is a reasonable choice for geometry in the unit-to-thousands scale.
// Operations that cannot produce a meaningful answer for their input, such as
// the bounding box of an empty polyline, fail with an error wrapping one of
// [ErrDegenerateInput], [ErrOutOfRange], or [ErrInvalidParameter] rather than
// returning degenerate numeric values.
//
// # Concurrency
//
// The kernel holds no shared state. Query methods are read-only and may be
// called concurrently on the same polyline; transform methods mutate in place
// and require exclusive access, to be arranged by the caller. Distinct
// polylines and shapes are fully independent.
package contour
