// internal/state/game_state.go
package state

import (
	"fmt"
	game "go-wave-spawner/internal/app"
	"go-wave-spawner/internal/config"
	"go-wave-spawner/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — основной экран: волны, враги, клики
type GameState struct {
	sm            *StateMachine
	game          *game.Game
	waveIndicator *ui.WaveIndicator
}

func NewGameState(sm *StateMachine, g *game.Game) *GameState {
	return &GameState{
		sm:            sm,
		game:          g,
		waveIndicator: ui.NewWaveIndicator(float64(config.ScreenWidth)/2, config.WaveIndicatorY, config.WaveIndicatorScale),
	}
}

func (g *GameState) Enter() {
	g.game.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.game.ToggleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Spawner.Reset()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.game.DamageAt(float64(x), float64(y), config.ClickDamage)
	}

	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.RenderSystem.Draw(screen)
	g.waveIndicator.Draw(screen, g.game.Level.CurrentWave())

	st := g.game.Spawner.State()
	killed, escaped := g.game.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Wave: %d (best %d)\nPhase: %s\nSpawned: %d/%d  Remaining: %d\nKilled: %d  Escaped: %d\nSpeed: x%.0f",
		g.game.Level.CurrentWave(), g.game.Level.BestWave(),
		g.game.Spawner.Phase(),
		st.EnemiesSpawned, g.game.Spawner.Config().EnemyCount, st.EnemiesRemaining,
		killed, escaped,
		g.game.SpeedMultiplier,
	))
}

func (g *GameState) Exit() {}

func (g *GameState) GetGame() *game.Game {
	return g.game
}
