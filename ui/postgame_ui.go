package ui

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/scoring"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// PostGameSummary is what the post-game screen shows.
type PostGameSummary struct {
	Title   string
	Result  scoring.Result
	Best    int
	NewBest bool

	Throws, Catches, Splits int
}

type PostGameUI struct {
	UI *ebitenui.UI

	OnPlayAgain func()
	OnMenu      func()
	OnQuit      func()

	faces faces
}

func NewPostGameUI(summary PostGameSummary, onPlayAgain, onMenu, onQuit func()) *PostGameUI {
	ui := &PostGameUI{
		OnPlayAgain: onPlayAgain,
		OnMenu:      onMenu,
		OnQuit:      onQuit,
		faces:       loadFaces(),
	}
	ui.buildUI(summary)
	return ui
}

func (ui *PostGameUI) buildUI(summary PostGameSummary) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	contentContainer := centeredColumn(6)

	contentContainer.AddChild(newLabel(summary.Title, &ui.faces.title, cfg.White))
	contentContainer.AddChild(ui.buildBowlTable(summary.Result))

	contentContainer.AddChild(newLabel(fmt.Sprintf("Score %d", summary.Result.Score), &ui.faces.normal, cfg.White))
	best := fmt.Sprintf("Best %d", summary.Best)
	bestColor := color.Color(cfg.UI.HUDTextColor)
	if summary.NewBest {
		best = "New best!"
		bestColor = cfg.Yellow
	}
	contentContainer.AddChild(newLabel(best, &ui.faces.normal, bestColor))
	contentContainer.AddChild(newLabel(
		fmt.Sprintf("Throws %d   Catches %d   Splits %d", summary.Throws, summary.Catches, summary.Splits),
		&ui.faces.small, dimText))

	buttons := buttonRow()
	buttons.AddChild(newButton("Play again", &ui.faces.normal, func() { call(ui.OnPlayAgain) }))
	buttons.AddChild(newButton("Menu", &ui.faces.normal, func() { call(ui.OnMenu) }))
	buttons.AddChild(newButton("Quit", &ui.faces.normal, func() { call(ui.OnQuit) }))
	contentContainer.AddChild(buttons)

	rootContainer.AddChild(contentContainer)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *PostGameUI) buildBowlTable(res scoring.Result) *widget.Container {
	table := panel()
	if len(res.Bowls) == 0 {
		table.AddChild(newLabel("No bowls filled", &ui.faces.small, dimText))
		return table
	}
	for _, line := range BowlLines(res) {
		table.AddChild(newLabel(line, &ui.faces.small, tableText))
	}
	return table
}

// BowlLines formats one line per rated bowl.
func BowlLines(res scoring.Result) []string {
	lines := make([]string, 0, len(res.Bowls))
	for i, b := range res.Bowls {
		lines = append(lines, fmt.Sprintf("Bowl %d: %d fruit   %d + mass %d + variety %d = %d",
			i+1, b.Fruits, b.FruitScore, b.MassScore, b.DiversityScore, b.Sum))
	}
	return lines
}

func (ui *PostGameUI) Update() {
	ui.UI.Update()
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
