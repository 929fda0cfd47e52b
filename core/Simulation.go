package core

import "math"

// World 球、兩支球拍與畫布
type World struct {
	Surface        Surface
	Ball           Ball
	Player         Paddle
	Opponent       Paddle
	TrackingFactor float64
}

// moveBall integrates one fixed tick; there is no delta time.
func (w *World) moveBall() {
	w.Ball.X += w.Ball.VelocityX
	w.Ball.Y += w.Ball.VelocityY
}

// bounceWalls flips the vertical velocity without pushing the ball back inside.
func (w *World) bounceWalls() {
	b := &w.Ball
	if b.Y-b.Radius < 0 || b.Y+b.Radius > w.Surface.Height {
		b.VelocityY = -b.VelocityY
	}
}

// deflect 球碰到球拍時貼齊球拍並依擊球點計算反彈角度
func (w *World) deflect(p *Paddle, direction float64) bool {
	b := &w.Ball
	if !Overlaps(b.Bounds(), p.Bounds()) {
		return false
	}

	if direction > 0 {
		b.X = p.X + p.Width + b.Radius
	} else {
		b.X = p.X - b.Radius
	}

	//擊球點 -1(上緣) ~ 1(下緣)
	collidePoint := (b.Y - p.CenterY()) / (p.Height / 2)
	collidePoint = math.Max(-1, math.Min(1, collidePoint))
	b.Bounce(collidePoint*MaxBounceAngle, direction)
	return true
}

func (w *World) missedLeft() bool {
	return w.Ball.X-w.Ball.Radius < 0
}

func (w *World) missedRight() bool {
	return w.Ball.X+w.Ball.Radius > w.Surface.Width
}

// trackOpponent moves the opponent a fixed fraction of the way toward the ball.
func (w *World) trackOpponent() {
	target := w.Ball.Y - w.Opponent.Height/2
	w.Opponent.Y += (target - w.Opponent.Y) * w.TrackingFactor
	w.Opponent.Clamp(w.Surface)
}
