package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/fruitrang/config"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	dimText   = color.RGBA{200, 200, 200, 255}
	tableText = color.RGBA{220, 220, 220, 255}
	panelBg   = color.RGBA{30, 30, 45, 255}
)

// faces are the text sizes every screen uses.
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	return faces{
		title:  &text.GoTextFace{Source: fontSource, Size: cfg.UI.TitleFontSize},
		normal: &text.GoTextFace{Source: fontSource, Size: 12},
		small:  &text.GoTextFace{Source: fontSource, Size: 10},
	}
}

// centeredColumn is a vertical row layout anchored to the middle of its parent.
func centeredColumn(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

func panel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelBg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
	)
}

func buttonRow() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
}

func newButton(label string, face *text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.UI.ButtonIdle),
			Hover:   image.NewNineSliceColor(cfg.UI.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.UI.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newLabel(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: clr}),
	)
}
