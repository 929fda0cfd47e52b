package core

import "math"

const MaxLaunchAngle = math.Pi / 4 // 發球最大角度 45°
const MaxBounceAngle = math.Pi / 4 // 球拍反彈最大角度 45°

// RandomSource is satisfied by *rand.Rand; tests pass a seeded one.
type RandomSource interface {
	Float64() float64
}

// ResetBall 把球放回中心，用 speed 重新發球
func ResetBall(b *Ball, s Surface, speed float64, rnd RandomSource) {
	b.X = s.Width / 2
	b.Y = s.Height / 2
	b.Speed = speed

	//隨機角度 -45° ~ +45°
	angle := rnd.Float64()*2*MaxLaunchAngle - MaxLaunchAngle
	direction := -1.0
	if rnd.Float64() > 0.5 {
		direction = 1
	}
	b.Bounce(angle, direction)
}

// LaunchAngle 速度與水平線的夾角
func (b *Ball) LaunchAngle() float64 {
	return math.Atan2(b.VelocityY, math.Abs(b.VelocityX))
}
