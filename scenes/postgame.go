package scenes

import (
	"sync"

	"github.com/automoto/fruitrang/components"
	"github.com/automoto/fruitrang/systems"
	"github.com/automoto/fruitrang/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// PostGameScene shows the bowl ratings of the last round.
type PostGameScene struct {
	sceneChanger SceneChanger
	arenaName    string
	results      systems.SavedResults
	best         int
	postGameUI   *ui.PostGameUI
	once         sync.Once

	playAgain bool
	menu      bool
	quit      bool
}

func NewPostGameScene(sc SceneChanger, arenaName string, results systems.SavedResults, best int) *PostGameScene {
	return &PostGameScene{
		sceneChanger: sc,
		arenaName:    arenaName,
		results:      results,
		best:         best,
	}
}

func (ps *PostGameScene) Update() {
	ps.once.Do(ps.configure)
	ps.postGameUI.Update()

	// Transitions happen outside the click handlers so the UI finishes its frame.
	switch {
	case ps.playAgain:
		ps.sceneChanger.ChangeScene(NewArenaScene(ps.sceneChanger, ps.arenaName))
	case ps.menu:
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.arenaName))
	case ps.quit:
		ps.sceneChanger.Quit()
	}
}

func (ps *PostGameScene) Draw(screen *ebiten.Image) {
	if ps.postGameUI == nil {
		return
	}
	ps.postGameUI.UI.Draw(screen)
}

func (ps *PostGameScene) configure() {
	ps.postGameUI = ui.NewPostGameUI(ui.PostGameSummary{
		Title:   Title(ps.results.End),
		Result:  ps.results.Result,
		Best:    ps.best,
		NewBest: ps.results.NewBest,
		Throws:  ps.results.Throws,
		Catches: ps.results.Catches,
		Splits:  ps.results.Splits,
	},
		func() { ps.playAgain = true },
		func() { ps.menu = true },
		func() { ps.quit = true },
	)
}

// Title is the post-game heading for a round end reason.
func Title(end string) string {
	switch end {
	case components.RoundBowlsFilled.String():
		return "All bowls filled!"
	case components.RoundTimeUp.String():
		return "Time's up!"
	}
	return "Round over"
}
