// Package render rasterizes coverage fields into PNG heatmaps for debugging
// and tuning. It is developer tooling, not the game renderer.
package render

import (
	"fmt"

	"github.com/fogleman/gg"
)

// TileSize is the pixel size of one grid cell in rendered output.
const TileSize = 8

// Heatmap writes a percentage field as a PNG. Zero renders near-black and
// 100 renders full green, with a red tint below half coverage.
func Heatmap(field [][]float64, path string) error {
	size := len(field)
	if size == 0 {
		return fmt.Errorf("empty field")
	}
	dc := gg.NewContext(size*TileSize, size*TileSize)
	dc.SetRGB(0.05, 0.05, 0.07)
	dc.Clear()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := field[y][x] / 100
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			dc.SetRGB(0.8*(1-v), 0.8*v, 0.1)
			dc.DrawRectangle(float64(x*TileSize), float64(y*TileSize), TileSize, TileSize)
			dc.Fill()
		}
	}
	return dc.SavePNG(path)
}

// Mask writes a boolean field as a PNG: covered cells light, the rest dark.
func Mask(field [][]bool, path string) error {
	size := len(field)
	if size == 0 {
		return fmt.Errorf("empty field")
	}
	dc := gg.NewContext(size*TileSize, size*TileSize)
	dc.SetRGB(0.05, 0.05, 0.07)
	dc.Clear()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !field[y][x] {
				continue
			}
			dc.SetRGB(0.9, 0.85, 0.4)
			dc.DrawRectangle(float64(x*TileSize), float64(y*TileSize), TileSize, TileSize)
			dc.Fill()
		}
	}
	return dc.SavePNG(path)
}
