package core

import "math"

// Surface 畫布的邏輯大小
type Surface struct {
	Width, Height float64
}

type Ball struct {
	X, Y                 float64
	Radius               float64
	Speed                float64 // 速度大小，只在換關或重來時改變
	VelocityX, VelocityY float64
}

// Control 球拍由誰控制
type Control int

const (
	ControlPointer  Control = iota // 玩家(滑鼠/鍵盤)
	ControlTracking                // 電腦追球
)

type Paddle struct {
	X, Y          float64
	Width, Height float64
	Control       Control
	NickName      string
}

func (b *Ball) Bounds() Circle {
	return Circle{X: b.X, Y: b.Y, Radius: b.Radius}
}

// Magnitude 目前速度向量的長度
func (b *Ball) Magnitude() float64 {
	return math.Hypot(b.VelocityX, b.VelocityY)
}

// Bounce 以角度與水平方向(+1 往右, -1 往左)重新計算速度，長度固定為 Speed
func (b *Ball) Bounce(angle, direction float64) {
	b.VelocityX = direction * b.Speed * math.Cos(angle)
	b.VelocityY = b.Speed * math.Sin(angle)
}

func (p *Paddle) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Clamp 讓球拍留在畫布內
func (p *Paddle) Clamp(s Surface) {
	p.Y = math.Max(math.Min(p.Y, s.Height-p.Height), 0)
}
