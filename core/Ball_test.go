package core

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func TestResetBallFixedDraws(t *testing.T) {
	surface := Surface{Width: 800, Height: 600}

	cases := []struct {
		name   string
		draws  []float64
		vx, vy float64
	}{
		{"straight left", []float64{0.5, 0.5}, -5, 0},
		{"steepest up and right", []float64{0, 0.9}, 5 * math.Cos(math.Pi/4), -5 * math.Sin(math.Pi/4)},
		{"straight right", []float64{0.5, 0.51}, 5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b Ball
			ResetBall(&b, surface, 5, &sequenceRand{values: tc.draws})

			if b.X != 400 || b.Y != 300 {
				t.Errorf("ball at (%v,%v), want centre", b.X, b.Y)
			}
			if math.Abs(b.VelocityX-tc.vx) > epsilon || math.Abs(b.VelocityY-tc.vy) > epsilon {
				t.Errorf("velocity (%v,%v), want (%v,%v)", b.VelocityX, b.VelocityY, tc.vx, tc.vy)
			}
		})
	}
}

func TestResetBallRandomLaunches(t *testing.T) {
	surface := Surface{Width: 800, Height: 600}
	rnd := rand.New(rand.NewSource(7))

	left, right := 0, 0
	for i := 0; i < 2000; i++ {
		var b Ball
		speed := 5 + float64(i%5)*2
		ResetBall(&b, surface, speed, rnd)

		if math.Abs(b.Magnitude()-speed) > epsilon {
			t.Fatalf("launch %d: magnitude %v, want %v", i, b.Magnitude(), speed)
		}
		if math.Abs(b.LaunchAngle()) > MaxLaunchAngle+epsilon {
			t.Fatalf("launch %d: angle %v steeper than 45°", i, b.LaunchAngle())
		}
		if b.VelocityX < 0 {
			left++
		} else {
			right++
		}
	}

	if left == 0 || right == 0 {
		t.Errorf("expected both directions, got left=%d right=%d", left, right)
	}
}

func TestBounceKeepsSpeed(t *testing.T) {
	b := Ball{Speed: 9}
	for _, angle := range []float64{-MaxBounceAngle, -0.3, 0, 0.2, MaxBounceAngle} {
		b.Bounce(angle, -1)
		if math.Abs(b.Magnitude()-9) > epsilon {
			t.Errorf("angle %v: magnitude %v", angle, b.Magnitude())
		}
		if b.VelocityX >= 0 {
			t.Errorf("angle %v: expected leftward velocity, got %v", angle, b.VelocityX)
		}
	}
}
