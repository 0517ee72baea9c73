package main

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// StatsPanel is the camera readout in the top-left corner.
type StatsPanel struct {
	root  *widget.Container
	label *widget.Text
}

func NewStatsPanel() *StatsPanel {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	face := statsFace()
	label := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xe8, G: 0xf0, B: 0xe0, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &StatsPanel{root: root, label: label}
}

// statsFace prefers Go Regular and falls back to the built-in bitmap font.
func statsFace() ebtext.Face {
	src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("stats: font: %v", err)
		return ebtext.NewGoXFace(basicfont.Face7x13)
	}
	return &ebtext.GoTextFace{Source: src, Size: 13}
}

func (p *StatsPanel) SetText(s string) {
	p.label.Label = s
}

func (p *StatsPanel) UI() *ebitenui.UI {
	return &ebitenui.UI{Container: p.root}
}
