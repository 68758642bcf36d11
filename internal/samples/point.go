package samples

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-formbind/pkg/model"
)

// Point is a 2-D point edited through struct tags.
type Point struct {
	model.ItemMarker

	X float64 `form:",order=0"`
	Y float64 `form:",order=1"`
}

func (p *Point) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(p.X), formatFloat(p.Y))
}

// PointType is the descriptor table equivalent of Point's struct tags.
var PointType = model.Define[Point]("Point", []model.Field{
	model.Float("x", func(p *Point) float64 { return p.X }, func(p *Point, v float64) { p.X = v }),
	model.Float("y", func(p *Point) float64 { return p.Y }, func(p *Point, v float64) { p.Y = v }, model.Order(1)),
}, model.Marked())

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'N' || r == 'I' {
			return s
		}
	}
	return s + ".0"
}
