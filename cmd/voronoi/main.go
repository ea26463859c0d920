// Command voronoi computes the planar Voronoi diagram of a set of
// sites read from a text file and prints it as JSON or a short
// human-readable summary.
package main

import "github.com/sherlockjack/geovoronoi/cmd/voronoi/cmd"

func main() {
	cmd.Execute()
}
