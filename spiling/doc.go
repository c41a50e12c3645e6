// Package spiling flattens planks of a hull onto a plane.
/*

A plank on a curved hull is a twisted ribbon in space. To cut it from flat
stock, boatbuilders "spile" it: they transfer a sequence of measured
distances onto a board, keeping every edge length of the ribbon. This package
does the same numerically.

Both boundary curves of a plank are resampled to the same number of points.
Consecutive top and bottom points form a strip of quadrilaterals, each split
along the diagonal from the bottom point to the next top point. The strip is
unrolled triangle by triangle: every new point is placed at its two known
distances from points already placed, by the law of cosines. Each triangle
keeps its three edge lengths exactly; what changes is the angle between
triangles, and that is the whole point of flattening. The method is local and
strictly forward. Errors are never propagated back to revise earlier
placements, so a plank with strong twist comes out slightly off. Planks that
can be bent from flat stock come out fine.

Flattened planks are then turned so that their top edge chord is horizontal
and stacked on top of each other, leaving a small gap, ready to be printed
or sent to a cutter.

BSD License

Copyright (c) e-matteson

All rights reserved.

Please refer to the license file for more information.
*/
package spiling
