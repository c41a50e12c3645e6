// Package catmull fits centripetal Catmull-Rom splines through hull
// reference points.
/*

A Catmull-Rom spline passes through every one of its points. It is a local
cubic interpolation: each piece is computed from four consecutive points only.
The parametrization matters. With uniform or chord-length knots, unevenly
spaced survey points produce cusps and self-intersections; the centripetal
variant takes the square root of the chord length between points as the knot
distance, which avoids both. A good description is:

   Parameterization and Applications of Catmull-Rom Curves
   Cem Yuksel, Scott Schaefer, John Keyser
   Computer-Aided Design 43 (2011), 747-755

Evaluation follows the pyramidal formulation of Barry and Goldman: three
linear blends of neighbouring points, two blends of these, and one final
blend.

Segments and Splines

A Segment is built from four points P0..P3 and interpolates the middle
interval between P1 and P2. The outer intervals [P0,P1] and [P2,P3] are not
covered by Catmull-Rom. A Spline needs them at its two ends, so a Segment
evaluates them with the same blend pyramid, using the outer knot interval for
the final blend. This is close to a Lagrange interpolation through all four
points. It is an approximation, but downstream geometry (stations, planks,
flattened patterns) is computed from exactly this curve, so it must not be
replaced by another one.

A Spline chains one Segment for every window of four consecutive points and
caches a dense polyline at a fixed resolution:

   spline, err := catmull.New(points, 10)
   length := spline.Length()
   mid := spline.AtT(0.5)

Points closer than lapstrake.EqualityThreshold to their predecessor are
dropped before fitting. At least four distinct points are needed.

BSD License

Copyright (c) e-matteson

All rights reserved.

Please refer to the license file for more information.
*/
package catmull
