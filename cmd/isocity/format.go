package main

import (
	"fmt"

	"github.com/ericmatamoros/isometric-city-sub000/pkg/bridge"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/coverage"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
)

func printFields(g *grid.Grid, f *coverage.Fields) {
	fmt.Printf("Coverage (%d×%d grid)\n", g.Size, g.Size)
	fmt.Println("=====================")
	fmt.Println()

	fmt.Printf("%-10s %8s %8s %8s\n", "Service", "Avg", "Max", "Covered")
	fmt.Printf("%-10s %8s %8s %8s\n", "----------", "--------", "--------", "--------")

	rows := []struct {
		label string
		field [][]float64
	}{
		{"police", f.Police},
		{"fire", f.Fire},
		{"health", f.Health},
		{"education", f.Education},
	}
	cells := g.Size * g.Size
	for _, row := range rows {
		sum, maxV, covered := 0.0, 0.0, 0
		for y := 0; y < g.Size; y++ {
			for x := 0; x < g.Size; x++ {
				v := row.field[y][x]
				sum += v
				if v > maxV {
					maxV = v
				}
				if v > 0 {
					covered++
				}
			}
		}
		fmt.Printf("%-10s %7.1f%% %7.1f%% %7.1f%%\n",
			row.label, sum/float64(cells), maxV, 100*float64(covered)/float64(cells))
	}

	masks := []struct {
		label string
		field [][]bool
	}{
		{"power", f.Power},
		{"water", f.Water},
	}
	for _, row := range masks {
		covered := 0
		for y := 0; y < g.Size; y++ {
			for x := 0; x < g.Size; x++ {
				if row.field[y][x] {
					covered++
				}
			}
		}
		fmt.Printf("%-10s %8s %8s %7.1f%%\n",
			row.label, "-", "-", 100*float64(covered)/float64(cells))
	}
}

func printDetection(det *bridge.Detection, info grid.BridgeInfo) {
	fmt.Printf("Bridge: %s (variant %d), span %d, orientation %s, height %d\n",
		info.BridgeType, info.Variant, det.Span, det.Orientation, info.Height)
	fmt.Printf("  id: %s\n", info.BridgeID)
	fmt.Print("  deck:")
	for _, c := range det.Tiles {
		fmt.Printf(" (%d,%d)", c.X, c.Y)
	}
	fmt.Println()
}
