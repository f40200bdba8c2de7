package docs

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/arthur-debert/typekit/pkg/direction"
	"github.com/arthur-debert/typekit/pkg/errors"
	"github.com/arthur-debert/typekit/pkg/geom"
)

const svgNS = "http://www.w3.org/2000/svg"

// DirectionRose renders the four directions as arrows from a common
// center, positioned from each direction's own Delta.
func DirectionRose() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNS)
	svg.CreateAttr("viewBox", "0 0 200 200")

	center := geom.Pt(100, 100)
	arm := 60

	for _, d := range direction.Directions() {
		delta := d.Delta()
		tip := geom.Pt(center.X+delta.X*arm, center.Y+delta.Y*arm)

		line := svg.CreateElement("line")
		line.CreateAttr("x1", fmt.Sprint(center.X))
		line.CreateAttr("y1", fmt.Sprint(center.Y))
		line.CreateAttr("x2", fmt.Sprint(tip.X))
		line.CreateAttr("y2", fmt.Sprint(tip.Y))
		line.CreateAttr("stroke", "currentColor")
		line.CreateAttr("stroke-width", "2")

		// Label sits a little past the arrow tip
		label := geom.Pt(tip.X+delta.X*18, tip.Y+delta.Y*14)
		text := svg.CreateElement("text")
		text.CreateAttr("x", fmt.Sprint(label.X))
		text.CreateAttr("y", fmt.Sprint(label.Y+4))
		text.CreateAttr("text-anchor", "middle")
		text.CreateAttr("font-size", "12")
		text.SetText(d.String())
	}

	dot := svg.CreateElement("circle")
	dot.CreateAttr("cx", fmt.Sprint(center.X))
	dot.CreateAttr("cy", fmt.Sprint(center.Y))
	dot.CreateAttr("r", "3")
	dot.CreateAttr("fill", "currentColor")

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDocsFigure, "failed to serialize direction rose")
	}
	return data, nil
}

// RectAnatomy renders a labeled Rect with its origin and size, and the
// four corners placed from the Corner enumeration.
func RectAnatomy() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNS)
	svg.CreateAttr("viewBox", "0 0 240 160")

	r := geom.Rct(40, 40, 160, 80)

	box := svg.CreateElement("rect")
	box.CreateAttr("x", fmt.Sprint(r.X))
	box.CreateAttr("y", fmt.Sprint(r.Y))
	box.CreateAttr("width", fmt.Sprint(r.Width))
	box.CreateAttr("height", fmt.Sprint(r.Height))
	box.CreateAttr("fill", "none")
	box.CreateAttr("stroke", "currentColor")
	box.CreateAttr("stroke-width", "2")

	origin := svg.CreateElement("circle")
	origin.CreateAttr("cx", fmt.Sprint(r.X))
	origin.CreateAttr("cy", fmt.Sprint(r.Y))
	origin.CreateAttr("r", "3")
	origin.CreateAttr("fill", "currentColor")

	originLabel := svg.CreateElement("text")
	originLabel.CreateAttr("x", fmt.Sprint(r.X))
	originLabel.CreateAttr("y", fmt.Sprint(r.Y-8))
	originLabel.CreateAttr("font-size", "11")
	originLabel.SetText(fmt.Sprintf("origin %s", r.Origin()))

	sizeLabel := svg.CreateElement("text")
	center := r.Center()
	sizeLabel.CreateAttr("x", fmt.Sprint(center.X))
	sizeLabel.CreateAttr("y", fmt.Sprint(center.Y+4))
	sizeLabel.CreateAttr("text-anchor", "middle")
	sizeLabel.CreateAttr("font-size", "11")
	sizeLabel.SetText(r.Size().String())

	for _, c := range direction.Corners() {
		p := cornerPoint(r, c)
		mark := svg.CreateElement("circle")
		mark.CreateAttr("cx", fmt.Sprint(p.X))
		mark.CreateAttr("cy", fmt.Sprint(p.Y))
		mark.CreateAttr("r", "2")
		mark.CreateAttr("fill", "currentColor")
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDocsFigure, "failed to serialize rect anatomy")
	}
	return data, nil
}

// cornerPoint returns the coordinates of the given corner of r.
func cornerPoint(r geom.Rect, c direction.Corner) geom.Point {
	p := r.Origin()
	if c.HorizontalEdge() == direction.Right {
		p.X += r.Width
	}
	if c.VerticalEdge() == direction.Down {
		p.Y += r.Height
	}
	return p
}
