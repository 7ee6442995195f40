package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/fruitrang/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	arenaName    string
	menuUI       *ui.MenuUI
	once         sync.Once

	play bool
	quit bool
}

// NewMenuScene creates a menu whose Play button starts the named arena
func NewMenuScene(sc SceneChanger, arenaName string) *MenuScene {
	return &MenuScene{sceneChanger: sc, arenaName: arenaName}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()

	switch {
	case ms.play:
		ms.sceneChanger.ChangeScene(NewArenaScene(ms.sceneChanger, ms.arenaName))
	case ms.quit:
		ms.sceneChanger.Quit()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		func() { ms.play = true },
		func() { ms.quit = true },
	)
}
