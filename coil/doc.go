// Package coil synthesizes the polyline of a single spring.
/*

A spring is a helix of constant pitch, seen from the side: a circle of
radius diameter/2 whose center sweeps linearly from the start point of a
connection to its end point, while the angle on the circle sweeps a
number of full revolutions. The number of revolutions is

   revolutions = length / (diameter * tension)

i.e. a larger tension results in fewer revolutions over the same length,
a looser looking coil. The same is true for a larger diameter.

The density of points is given per revolution: n points for every full
turn, rounded to an integer for the whole coil. A coil need not end at a
full turn, fractional revolutions produce a partial final loop.

Usage

   pts, err := coil.Generate(coil.Segment{
       From:     springs.P(0, 0),
       To:       springs.P(10, 0),
       Diameter: 2,
       Tension:  1,
   }, 50)

yields 250 points, starting at (1,0) and winding 5 times around the
line from (0,0) to (10,0).

Connections of length 0 produce no points at all.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package coil
