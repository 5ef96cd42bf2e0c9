package access

import (
	"fmt"

	"github.com/ericmatamoros/isometric-city-sub000/pkg/grid"
)

// Severity indicates how critical a placement finding is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single placement check result.
type Finding struct {
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	Cell     grid.Cell `json:"cell"`
}

// Report is the complete output of a placement check. OK is false only for
// errors; warnings leave the placement committable.
type Report struct {
	OK       bool      `json:"ok"`
	Findings []Finding `json:"findings"`
	Summary  string    `json:"summary"`
}

func (r *Report) add(f Finding) {
	if f.Severity == SeverityError {
		r.OK = false
	}
	r.Findings = append(r.Findings, f)
	errs, warns := 0, 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			errs++
		} else {
			warns++
		}
	}
	r.Summary = fmt.Sprintf("%d errors, %d warnings", errs, warns)
}

// CheckPlacement validates a proposed building placement without mutating
// the grid. Footprint cells outside the grid or already occupied are errors;
// a service building that would start life without road access is a warning,
// since the player may be about to draw the road.
func CheckPlacement(g *grid.Grid, x, y int, typ grid.BuildingType) *Report {
	r := &Report{OK: true, Summary: "0 errors, 0 warnings"}

	for _, c := range grid.Footprint(x, y, typ) {
		if !g.InBounds(c.X, c.Y) {
			r.add(Finding{
				Severity: SeverityError,
				Message:  fmt.Sprintf("footprint cell (%d,%d) is outside the map", c.X, c.Y),
				Cell:     c,
			})
			continue
		}
		if t := g.Tiles[c.Y][c.X].Building.Type; t != grid.BuildingNone {
			r.add(Finding{
				Severity: SeverityError,
				Message:  fmt.Sprintf("footprint cell (%d,%d) is occupied by %s", c.X, c.Y, t),
				Cell:     c,
			})
		}
	}

	if r.OK && RequiresRoad(typ) && !Connected(g, x, y, typ) {
		r.add(Finding{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%s at (%d,%d) has no road access and will not provide coverage", typ, x, y),
			Cell:     grid.Cell{X: x, Y: y},
		})
	}

	return r
}
