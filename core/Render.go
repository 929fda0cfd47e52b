package core

// Color 0xRRGGBB
type Color uint32

const (
	ColorBackground Color = 0x222222
	ColorNet        Color = 0xFFFFFF
	ColorPlayer     Color = 0x00FFB2
	ColorOpponent   Color = 0xFF006E
	ColorBall       Color = 0xFFFFFF
)

const netDash = 10 // 中線每段長度
const netGap = 20  // 中線每段間距
const netWidth = 2

// Canvas is the drawing surface. Coordinates are surface units, not pixels or cells.
type Canvas interface {
	FillRect(x, y, w, h float64, c Color)
	FillCircle(x, y, r float64, c Color)
	Present()
}

// StatusDisplay shows the level indicator, the transient message and the restart control.
type StatusDisplay interface {
	SetLevel(text string)
	SetMessage(text string)
	SetRestartVisible(visible bool)
}

// Render 畫出目前的畫面
func Render(cv Canvas, s *Session) {
	surface := s.Surface
	cv.FillRect(0, 0, surface.Width, surface.Height, ColorBackground)

	//中線
	for y := 0.0; y < surface.Height; y += netGap {
		cv.FillRect(surface.Width/2-netWidth/2, y, netWidth, netDash, ColorNet)
	}

	//兩個球拍
	cv.FillRect(s.Player.X, s.Player.Y, s.Player.Width, s.Player.Height, ColorPlayer)
	cv.FillRect(s.Opponent.X, s.Opponent.Y, s.Opponent.Width, s.Opponent.Height, ColorOpponent)

	//球
	cv.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, ColorBall)

	cv.Present()
}
