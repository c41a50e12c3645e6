/*
Package hull lofts a ship's hull from a table of offsets.

A table of offsets is the traditional way to write down the shape of a hull.
For each station, a cross-section at a fixed fore-aft position, it lists the
height of the hull at a number of buttocks (constant half-breadths from the
centerline) and the half-breadth of the hull at a number of waterlines
(constant heights above base). The sheer, the top edge of the hull, is
measured separately.

Hull turns every station's measurements into a smooth curve. Lines along the
hull which run through the same fraction of every station's curve fair the
stations into each other; they are used to make up stations at positions
which have not been measured. Planks are given as pairs of boundary lines,
each one a list of such fractions per station.

Coordinates are in feet: X runs fore-aft, Y is the half-breadth and Z is the
height above base.

BSD License

Copyright (c) e-matteson

All rights reserved.

Please refer to the license file for more information.
*/
package hull
