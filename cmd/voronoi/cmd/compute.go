package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sherlockjack/geovoronoi"
	"github.com/sherlockjack/geovoronoi/sitesio"
	"github.com/spf13/cobra"
)

var (
	inputFlag   string
	configFlag  string
	epsilonFlag float64
	marginFlag  float64
	lecFlag     bool
	formatFlag  string
	verboseFlag bool
)

// computeCmd computes the Voronoi diagram of the sites in --input.
var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "compute the Voronoi diagram of a site file",
	Long: `Read sites (one "x y" or "x,y" pair per line) from --input,
compute their Voronoi diagram, and print it as JSON or a short text
summary.`,
	RunE: runCompute,
}

func init() {
	RootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringVar(&inputFlag, "input", "", "site file to read (required)")
	computeCmd.Flags().StringVar(&configFlag, "config", "", "YAML build settings file")
	computeCmd.Flags().Float64Var(&epsilonFlag, "epsilon", 0, "numerical tolerance")
	computeCmd.Flags().Float64Var(&marginFlag, "margin", 0, "bounding-box margin ratio")
	computeCmd.Flags().BoolVar(&lecFlag, "lec", false, "report the largest empty circles")
	computeCmd.Flags().StringVar(&formatFlag, "format", "", "output format: text or json")
	computeCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "log each sweep event")
	_ = computeCmd.MarkFlagRequired("input")
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg := defaultConfig()
	if configFlag != "" {
		loaded, err := loadConfig(configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon = epsilonFlag
	}
	if cmd.Flags().Changed("margin") {
		cfg.MarginRatio = marginFlag
	}
	if cmd.Flags().Changed("lec") {
		cfg.LargestEmptyCircles = lecFlag
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = formatFlag
	}

	sites, err := sitesio.LoadFile(inputFlag)
	if err != nil {
		return err
	}

	opts := []geovoronoi.Option{
		geovoronoi.WithEpsilon(cfg.Epsilon),
		geovoronoi.WithBoundingMarginRatio(cfg.MarginRatio),
		geovoronoi.WithVerbose(verboseFlag),
		geovoronoi.WithLargestEmptyCircles(cfg.LargestEmptyCircles),
	}

	diagram, err := geovoronoi.Compute(sites, opts...)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		return printJSON(diagram)
	default:
		printText(diagram)
		return nil
	}
}

func printJSON(d *geovoronoi.Diagram) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func printText(d *geovoronoi.Diagram) {
	fmt.Printf("sites: %d\n", len(d.Sites))
	fmt.Printf("vertices: %d\n", len(d.Vertices))
	fmt.Printf("edges: %d\n", len(d.Edges))
	fmt.Printf("bounding box: [%.4f, %.4f] x [%.4f, %.4f]\n",
		d.BoundingBox.XMin, d.BoundingBox.YMin, d.BoundingBox.XMax, d.BoundingBox.YMax)
	for i, v := range d.Vertices {
		fmt.Printf("  vertex %d: (%.6f, %.6f) sites=%v\n", i, v.Point.X, v.Point.Y, v.Sites)
	}
	for i, e := range d.Edges {
		fmt.Printf("  edge %d: (%.6f, %.6f) -> (%.6f, %.6f) left=%d right=%d\n",
			i, e.Start.X, e.Start.Y, e.End.X, e.End.Y, e.LeftSite, e.RightSite)
	}
	for i, c := range d.LargestEmptyCircles {
		fmt.Printf("  largest empty circle %d: center=(%.6f, %.6f) radius=%.6f\n",
			i, c.Center.X, c.Center.Y, c.Radius)
	}
}
