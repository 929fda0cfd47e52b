package core

import (
	"fmt"

	"LevelPong/logger"

	"github.com/google/uuid"
)

const GameOverText = "Game Over!"
const GameWinText = "You Win! 🎉"

// Game drives a Session on a Scheduler and projects it onto a Canvas and a
// StatusDisplay. All methods must be called from the scheduler's goroutine.
type Game struct {
	SessionId string

	session *Session
	canvas  Canvas
	status  StatusDisplay
	sched   Scheduler

	frame       FrameID
	cancelPause func()
}

func NewGame(session *Session, canvas Canvas, status StatusDisplay, sched Scheduler) *Game {
	return &Game{
		session: session,
		canvas:  canvas,
		status:  status,
		sched:   sched,
	}
}

func (g *Game) Session() *Session {
	return g.session
}

// Start 開始新的一局(第一關)
func (g *Game) Start() {
	g.reset()
}

// Restart only acts once the session has been lost or won.
func (g *Game) Restart() bool {
	if !g.session.Terminal() {
		logger.Log.Session(g.SessionId).Debug(fmt.Sprintf(logger.RestartIgnoredMsg, g.session.Phase))
		return false
	}
	g.reset()
	return true
}

// PointerMoved sets the player target from a surface-local pointer y.
func (g *Game) PointerMoved(y float64) {
	g.session.MovePlayer(y)
}

// NudgePlayer 鍵盤上下移動球拍
func (g *Game) NudgePlayer(dy float64) {
	g.session.MovePlayer(g.session.Player.CenterY() + dy)
}

func (g *Game) reset() {
	g.stop()

	g.SessionId = uuid.NewString()
	g.session.Restart()

	g.status.SetRestartVisible(false)
	g.status.SetLevel(levelText(g.session.Level))
	g.status.SetMessage("")

	logger.Log.Session(g.SessionId).Info(fmt.Sprintf(logger.SessionStartMsg, g.session.Level, g.session.Ball.Speed))
	g.loop()
}

// stop cancels the pending frame and level pause so no second loop survives.
func (g *Game) stop() {
	if g.frame != 0 {
		g.sched.CancelFrame(g.frame)
		g.frame = 0
	}
	if g.cancelPause != nil {
		g.cancelPause()
		g.cancelPause = nil
	}
}

func (g *Game) loop() {
	g.frame = 0
	if !g.session.Playing() {
		return
	}

	switch g.session.Step() {
	case TransitionLevelUp:
		g.nextLevel()
	case TransitionLost:
		g.endGame(false)
	case TransitionWon:
		g.endGame(true)
	}

	Render(g.canvas, g.session)

	if g.session.Playing() {
		g.frame = g.sched.RequestFrame(g.loop)
	}
}

func (g *Game) nextLevel() {
	level := g.session.Level
	g.status.SetLevel(levelText(level))
	g.status.SetMessage(fmt.Sprintf("Level %d!", level))
	logger.Log.Session(g.SessionId).Info(fmt.Sprintf(logger.LevelUpMsg, level, g.session.Ball.Speed))

	g.cancelPause = g.sched.After(g.session.Rules.LevelPause, func() {
		g.cancelPause = nil
		if !g.session.Resume() {
			return
		}
		g.status.SetMessage("")
		logger.Log.Session(g.SessionId).Debug(fmt.Sprintf(logger.LevelResumeMsg, level))
		g.loop()
	})
}

func (g *Game) endGame(win bool) {
	g.stop()

	if win {
		g.status.SetMessage(GameWinText)
		logger.Log.Session(g.SessionId).Info(fmt.Sprintf(logger.GameWinMsg, g.session.Level))
	} else {
		g.status.SetMessage(GameOverText)
		logger.Log.Session(g.SessionId).Info(fmt.Sprintf(logger.GameOverMsg, g.session.Level))
	}
	g.status.SetRestartVisible(true)
}

func levelText(level int) string {
	return fmt.Sprintf("Level: %d", level)
}
