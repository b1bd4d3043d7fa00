package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crease",
	Short: "Sharp edge detection and smooth region partitioning for triangle meshes",
	Long: `crease analyzes triangulated 3D surfaces: it computes the dihedral angle
at every edge, classifies edges as sharp or smooth against a threshold,
and partitions faces into maximal regions connected through smooth edges.
Supported input formats are Wavefront OBJ and STL (binary and ASCII).`,
	SilenceUsage: true,
}
