package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ericmatamoros/isometric-city-sub000/internal/server"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/access"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/bridge"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/config"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/coverage"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/render"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/save"
)

// loadCity reads a save file and the tunables next to it.
func loadCity(savePath string) (*grid.Grid, *config.Tunables, error) {
	data, err := os.ReadFile(savePath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading save: %w", err)
	}
	g, err := save.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	tun, err := config.LoadProject(filepath.Dir(savePath))
	if err != nil {
		return nil, nil, err
	}
	return g, tun, nil
}

func parseCell(s string) (grid.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Cell{}, fmt.Errorf("coordinate %q must be x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return grid.Cell{X: x, Y: y}, nil
}

func runCoverage(savePath string) error {
	g, tun, err := loadCity(savePath)
	if err != nil {
		return err
	}
	fields := coverage.Compute(g, access.NewCache(), 1, tun.Coverage)
	printFields(g, fields)
	return nil
}

func runBridge(savePath, from, to string) error {
	g, tun, err := loadCity(savePath)
	if err != nil {
		return err
	}
	a, err := parseCell(from)
	if err != nil {
		return err
	}
	b, err := parseCell(to)
	if err != nil {
		return err
	}

	det := bridge.DetectSpan(g, a.X, a.Y, b.X, b.Y)
	if det == nil {
		fmt.Println("No bridge: path needs no crossing or the crossing is unbuildable.")
		return nil
	}
	cls := bridge.NewClassifier(tun.Bridges, nil)
	info := cls.Classify(det.Span, 0, det.Orientation, bridge.Options{})
	printDetection(det, info)
	return nil
}

func runRender(savePath, outDir string) error {
	g, tun, err := loadCity(savePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	fields := coverage.Compute(g, access.NewCache(), 1, tun.Coverage)

	heatmaps := map[string][][]float64{
		"police":    fields.Police,
		"fire":      fields.Fire,
		"health":    fields.Health,
		"education": fields.Education,
	}
	for name, field := range heatmaps {
		path := filepath.Join(outDir, name+".png")
		if err := render.Heatmap(field, path); err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	masks := map[string][][]bool{
		"power": fields.Power,
		"water": fields.Water,
	}
	for name, field := range masks {
		path := filepath.Join(outDir, name+".png")
		if err := render.Mask(field, path); err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func runMigrate(savePath string) error {
	data, err := os.ReadFile(savePath)
	if err != nil {
		return fmt.Errorf("reading save: %w", err)
	}
	g, err := save.Decode(data)
	if err != nil {
		return err
	}
	out, err := save.Encode(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(savePath, out, 0o644); err != nil {
		return fmt.Errorf("writing save: %w", err)
	}
	fmt.Printf("migrated %s to format version %d\n", savePath, save.FormatVersion)
	return nil
}

func runServe(savePath string, port int) error {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Port = port
	}
	if cfg.Port == 0 {
		cfg.Port = 3000
	}
	if savePath != "" {
		cfg.SavePath = savePath
	}

	var g *grid.Grid
	tun := config.Default()
	if cfg.SavePath != "" {
		g, tun, err = loadCity(cfg.SavePath)
		if err != nil {
			return err
		}
	} else {
		g = grid.New(64)
	}

	return server.New(cfg, g, tun).Start()
}
