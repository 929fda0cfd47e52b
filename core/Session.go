package core

// Phase 一局遊戲目前的狀態
type Phase int

const (
	PhasePlaying         Phase = iota
	PhaseLevelTransition       // 換關暫停，不是結束
	PhaseLost
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseLevelTransition:
		return "LevelTransition"
	case PhaseLost:
		return "Lost"
	case PhaseWon:
		return "Won"
	}
	return "Unknown"
}

// Transition reports what a single Step changed in the session phase.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionLevelUp
	TransitionLost
	TransitionWon
)

// Session holds everything one play session mutates. Step is the only
// place the ball moves; Restart is the only way out of Lost or Won.
type Session struct {
	World
	Rules Rules
	Level int
	Phase Phase

	rnd RandomSource
}

func NewSession(rules Rules, rnd RandomSource) *Session {
	surface := rules.Surface()
	paddleStart := surface.Height/2 - rules.PaddleHeight/2

	s := &Session{
		World: World{
			Surface: surface,
			Ball:    Ball{Radius: rules.BallRadius},
			Player: Paddle{X: 0, Y: paddleStart, Width: rules.PaddleWidth,
				Height: rules.PaddleHeight, Control: ControlPointer, NickName: "Player"},
			Opponent: Paddle{X: surface.Width - rules.PaddleWidth, Y: paddleStart, Width: rules.PaddleWidth,
				Height: rules.PaddleHeight, Control: ControlTracking, NickName: "Computer"},
			TrackingFactor: rules.TrackingFactor,
		},
		Rules: rules,
		rnd:   rnd,
	}
	s.Restart()
	return s
}

// Restart 回到第一關，清掉結束狀態並重新發球
func (s *Session) Restart() {
	s.Level = 1
	s.Phase = PhasePlaying
	ResetBall(&s.Ball, s.Surface, s.Rules.SpeedFor(1), s.rnd)
}

func (s *Session) Playing() bool {
	return s.Phase == PhasePlaying
}

func (s *Session) IsOver() bool {
	return s.Phase == PhaseLost
}

func (s *Session) IsWin() bool {
	return s.Phase == PhaseWon
}

func (s *Session) Terminal() bool {
	return s.Phase == PhaseLost || s.Phase == PhaseWon
}

// MovePlayer centres the player paddle on pointerY. Ignored unless playing;
// the next Step clamps the result.
func (s *Session) MovePlayer(pointerY float64) {
	if !s.Playing() {
		return
	}
	s.Player.Y = pointerY - s.Player.Height/2
}

// Resume ends a level pause. It reports false when the session was not paused.
func (s *Session) Resume() bool {
	if s.Phase != PhaseLevelTransition {
		return false
	}
	s.Phase = PhasePlaying
	return true
}

// Step advances the session by one frame.
func (s *Session) Step() Transition {
	if !s.Playing() {
		return TransitionNone
	}
	w := &s.World

	w.moveBall()
	w.bounceWalls()

	//球拍碰撞：玩家往右打，電腦往左打
	w.deflect(&w.Player, 1)
	w.deflect(&w.Opponent, -1)

	//玩家漏接
	if w.missedLeft() {
		s.Phase = PhaseLost
		w.Player.Clamp(w.Surface)
		return TransitionLost
	}

	t := TransitionNone
	//電腦漏接
	if w.missedRight() {
		if s.Level < s.Rules.MaxLevel {
			s.Level++
			s.Phase = PhaseLevelTransition
			ResetBall(&w.Ball, w.Surface, s.Rules.SpeedFor(s.Level), s.rnd)
			t = TransitionLevelUp
		} else {
			s.Phase = PhaseWon
			t = TransitionWon
		}
	}

	w.trackOpponent()
	w.Player.Clamp(w.Surface)
	return t
}
