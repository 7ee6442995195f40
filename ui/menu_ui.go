package ui

import (
	"fmt"

	cfg "github.com/automoto/fruitrang/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// HowToPlay is shown one page at a time from the main menu.
var HowToPlay = []string{
	"Move with WASD or the arrow keys.\nHold Shift to sprint until your stamina runs out.",
	"Left click or Space throws the boomerang at the cursor.\nIt opens on the first wall it hits and keeps bouncing.",
	"A boomerang splits any fruit it hits once it is armed.\nWalk into it to catch it again.",
	"Right click or J slices the fruit in front of you.\nWhole fruit splits into smaller pieces.",
	"E or K swings your bowl to scoop up pieces.\nEach swing fills one bowl. Mix kinds for a variety bonus.",
}

// Credits lists who and what made the game.
var Credits = []string{
	"Fruitrang",
	"Built with Ebitengine, ebitenui, donburi and resolv",
	"Arena maps made in Tiled",
	"Go fonts by Bigelow & Holmes",
}

// Pager steps through a fixed list of pages.
type Pager struct {
	Pages []string
	index int
}

// Page returns the current page, or "" when there are none.
func (p *Pager) Page() string {
	if len(p.Pages) == 0 {
		return ""
	}
	return p.Pages[p.index]
}

// Next moves to the following page and reports whether there was one.
func (p *Pager) Next() bool {
	if p.index+1 >= len(p.Pages) {
		return false
	}
	p.index++
	return true
}

// Last reports whether the current page is the final one.
func (p *Pager) Last() bool {
	return p.index+1 >= len(p.Pages)
}

func (p *Pager) Reset() {
	p.index = 0
}

// Position is the "n/total" page counter.
func (p *Pager) Position() string {
	return fmt.Sprintf("%d/%d", p.index+1, len(p.Pages))
}

// MenuUI is the main menu with its how-to-play and credits panes.
type MenuUI struct {
	UI *ebitenui.UI

	OnPlay func()
	OnQuit func()

	root    *widget.Container
	pending func() *widget.Container
	tour    Pager
	faces   faces
}

func NewMenuUI(onPlay, onQuit func()) *MenuUI {
	ui := &MenuUI{
		OnPlay: onPlay,
		OnQuit: onQuit,
		tour:   Pager{Pages: HowToPlay},
		faces:  loadFaces(),
	}
	ui.root = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	ui.root.AddChild(ui.buildMain())
	ui.UI = &ebitenui.UI{Container: ui.root}
	return ui
}

// Update runs the widgets, then swaps in a pane a click asked for.
func (ui *MenuUI) Update() {
	ui.UI.Update()
	if ui.pending == nil {
		return
	}
	build := ui.pending
	ui.pending = nil
	ui.root.RemoveChildren()
	ui.root.AddChild(build())
}

func (ui *MenuUI) show(build func() *widget.Container) {
	ui.pending = build
}

func (ui *MenuUI) buildMain() *widget.Container {
	c := centeredColumn(8)
	c.AddChild(newLabel("Fruitrang", &ui.faces.title, cfg.White))
	c.AddChild(newButton("Play", &ui.faces.normal, func() { call(ui.OnPlay) }))
	c.AddChild(newButton("How to play", &ui.faces.normal, func() {
		ui.tour.Reset()
		ui.show(ui.buildHowToPlay)
	}))
	c.AddChild(newButton("Credits", &ui.faces.normal, func() { ui.show(ui.buildCredits) }))
	c.AddChild(newButton("Quit", &ui.faces.normal, func() { call(ui.OnQuit) }))
	return c
}

func (ui *MenuUI) buildHowToPlay() *widget.Container {
	c := centeredColumn(6)
	c.AddChild(newLabel("How to play", &ui.faces.title, cfg.White))

	page := panel()
	page.AddChild(newLabel(ui.tour.Page(), &ui.faces.normal, tableText))
	c.AddChild(page)
	c.AddChild(newLabel(ui.tour.Position(), &ui.faces.small, dimText))

	buttons := buttonRow()
	if !ui.tour.Last() {
		buttons.AddChild(newButton("Next", &ui.faces.normal, func() {
			ui.tour.Next()
			ui.show(ui.buildHowToPlay)
		}))
	}
	buttons.AddChild(newButton("Back", &ui.faces.normal, func() { ui.show(ui.buildMain) }))
	c.AddChild(buttons)
	return c
}

func (ui *MenuUI) buildCredits() *widget.Container {
	c := centeredColumn(6)
	c.AddChild(newLabel("Credits", &ui.faces.title, cfg.White))
	lines := panel()
	for _, line := range Credits {
		lines.AddChild(newLabel(line, &ui.faces.normal, tableText))
	}
	c.AddChild(lines)
	c.AddChild(newButton("Back", &ui.faces.normal, func() { ui.show(ui.buildMain) }))
	return c
}
