package main

import (
	"context"
	"fmt"
	"math"
	"strings"

	"LevelPong/core"
	"LevelPong/logger"

	"github.com/gdamore/tcell"
)

const StatusRows = 2      // 上方狀態列行數
const BallSymbol = 0x25CF // 球符號
const KeyboardStep = 20.0 // 鍵盤每次移動的距離
const RestartHint = "[R] Restart"

// terminal 把邏輯畫布縮放到終端機格子上
type terminal struct {
	screen  tcell.Screen
	surface core.Surface

	level          string
	message        string
	restartVisible bool
}

func newTerminal(screen tcell.Screen, surface core.Surface) *terminal {
	return &terminal{screen: screen, surface: surface}
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if e := screen.Init(); e != nil {
		return nil, e
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// scale 每個邏輯單位對應幾格
func (t *terminal) scale() (float64, float64) {
	cols, rows := t.screen.Size()
	rows -= StatusRows
	if rows < 1 {
		rows = 1
	}
	return float64(cols) / t.surface.Width, float64(rows) / t.surface.Height
}

// cellRange 把 [from, to) 轉成格子範圍，至少一格
func cellRange(from, to, scale float64) (int, int) {
	c0 := int(math.Floor(from * scale))
	c1 := int(math.Ceil(to * scale))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

func colorStyle(c core.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewHexColor(int32(c)))
}

func (t *terminal) FillRect(x, y, w, h float64, c core.Color) {
	sx, sy := t.scale()
	c0, c1 := cellRange(x, x+w, sx)
	r0, r1 := cellRange(y, y+h, sy)
	style := colorStyle(c)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			t.screen.SetContent(col, row+StatusRows, ' ', nil, style)
		}
	}
}

func (t *terminal) FillCircle(x, y, r float64, c core.Color) {
	sx, sy := t.scale()
	c0, c1 := cellRange(x-r, x+r, sx)
	r0, r1 := cellRange(y-r, y+r, sy)
	style := colorStyle(c)

	drawn := false
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			//格子中心在圓內才畫
			cx := (float64(col) + 0.5) / sx
			cy := (float64(row) + 0.5) / sy
			if math.Hypot(cx-x, cy-y) <= r {
				t.screen.SetContent(col, row+StatusRows, ' ', nil, style)
				drawn = true
			}
		}
	}
	//球比一格還小
	if !drawn {
		col := int(x * sx)
		row := int(y * sy)
		t.screen.SetContent(col, row+StatusRows, BallSymbol, nil,
			tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(c))).Background(tcell.NewHexColor(int32(core.ColorBackground))))
	}
}

func (t *terminal) Present() {
	t.drawStatus()
	t.screen.Show()
}

func (t *terminal) SetLevel(text string) {
	t.level = text
	t.drawStatus()
	t.screen.Show()
}

func (t *terminal) SetMessage(text string) {
	t.message = text
	t.drawStatus()
	t.screen.Show()
}

func (t *terminal) SetRestartVisible(visible bool) {
	t.restartVisible = visible
	t.drawStatus()
	t.screen.Show()
}

func (t *terminal) drawStatus() {
	width, _ := t.screen.Size()
	for row := 0; row < StatusRows; row++ {
		drawLetters(t.screen, 0, row, strings.Repeat(" ", width))
	}
	drawLetters(t.screen, 1, 0, t.level)
	drawLetters(t.screen, width/2-len([]rune(t.message))/2, 0, t.message)
	if t.restartVisible {
		drawLetters(t.screen, width-len(RestartHint)-1, 0, RestartHint)
	}
}

func drawLetters(screen tcell.Screen, x, y int, word string) {
	for i, letter := range []rune(word) {
		screen.SetContent(x+i, y, letter, nil, tcell.StyleDefault)
	}
}

// pointerY 把終端機的列換回邏輯座標(格子中心)
func (t *terminal) pointerY(row int) float64 {
	_, sy := t.scale()
	return (float64(row-StatusRows) + 0.5) / sy
}

// listenUserInput 另開 goroutine 監聽終端機事件，交給 event loop 處理
func listenUserInput(t *terminal, loop *core.EventLoop, game *core.Game, quit context.CancelFunc) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			//screen 已關閉
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventMouse:
			_, row := ev.Position()
			y := t.pointerY(row)
			loop.Post(func() { game.PointerMoved(y) })
		case *tcell.EventKey:
			if !handleKey(ev, loop, game) {
				logger.Log.Info(logger.QuitMsg)
				quit()
				return
			}
		}
	}
}

// handleKey returns false when the player asked to quit.
func handleKey(ev *tcell.EventKey, loop *core.EventLoop, game *core.Game) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		loop.Post(func() { game.NudgePlayer(-KeyboardStep) })
	case tcell.KeyDown:
		loop.Post(func() { game.NudgePlayer(KeyboardStep) })
	case tcell.KeyEnter:
		loop.Post(func() { game.Restart() })
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'w', 'W':
			loop.Post(func() { game.NudgePlayer(-KeyboardStep) })
		case 's', 'S':
			loop.Post(func() { game.NudgePlayer(KeyboardStep) })
		case 'r', 'R':
			loop.Post(func() { game.Restart() })
		}
	}
	return true
}

func start(rules core.Rules, rnd core.RandomSource) error {
	screen, err := initScreen()
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.ScreenInitFailedMsg, err))
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := newTerminal(screen, rules.Surface())
	loop := core.NewEventLoop(rules.FrameRate)
	game := core.NewGame(core.NewSession(rules, rnd), t, t, loop)

	go listenUserInput(t, loop, game, cancel)
	loop.Post(game.Start)

	if err := loop.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
