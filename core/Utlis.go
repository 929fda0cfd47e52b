package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Rules 一局遊戲的所有參數
type Rules struct {
	SurfaceWidth   float64
	SurfaceHeight  float64
	PaddleWidth    float64
	PaddleHeight   float64
	BallRadius     float64
	MaxLevel       int
	BaseSpeed      float64
	SpeedIncrement float64
	TrackingFactor float64 // 電腦球拍每幀追上的比例
	LevelPause     time.Duration
	FrameRate      int
	Seed           int64 // 0 表示用時間當種子
}

func DefaultRules() Rules {
	return Rules{
		SurfaceWidth:   800,
		SurfaceHeight:  600,
		PaddleWidth:    12,
		PaddleHeight:   100,
		BallRadius:     10,
		MaxLevel:       5,
		BaseSpeed:      5,
		SpeedIncrement: 2,
		TrackingFactor: 0.08,
		LevelPause:     1000 * time.Millisecond,
		FrameRate:      60,
	}
}

// SpeedFor returns the ball speed used for the given level.
func (r Rules) SpeedFor(level int) float64 {
	return r.BaseSpeed + float64(level-1)*r.SpeedIncrement
}

func (r Rules) Surface() Surface {
	return Surface{Width: r.SurfaceWidth, Height: r.SurfaceHeight}
}

func (r Rules) Validate() error {
	switch {
	case r.SurfaceWidth <= 0 || r.SurfaceHeight <= 0:
		return fmt.Errorf("surface must be positive, got %vx%v", r.SurfaceWidth, r.SurfaceHeight)
	case r.PaddleWidth <= 0 || r.PaddleHeight <= 0 || r.PaddleHeight > r.SurfaceHeight:
		return fmt.Errorf("invalid paddle size %vx%v", r.PaddleWidth, r.PaddleHeight)
	case r.BallRadius <= 0:
		return fmt.Errorf("ball radius must be positive, got %v", r.BallRadius)
	case r.MaxLevel < 1:
		return fmt.Errorf("MAX_LEVEL must be at least 1, got %d", r.MaxLevel)
	case r.BaseSpeed <= 0 || r.SpeedIncrement < 0:
		return fmt.Errorf("invalid speed %v (+%v per level)", r.BaseSpeed, r.SpeedIncrement)
	case r.FrameRate <= 0:
		return fmt.Errorf("FRAME_RATE must be positive, got %d", r.FrameRate)
	}
	return nil
}

// ErrNoProperties is returned together with DefaultRules when the file does not exist.
var ErrNoProperties = errors.New("properties file not found")

// ReadRules 讀取 properties 設定檔，flags 中的 seed / frame-rate 會覆蓋檔案的值
func ReadRules(path string, flags *pflag.FlagSet) (Rules, error) {
	d := DefaultRules()

	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	v.SetConfigType("properties")
	v.AddConfigPath(filepath.Dir(path))

	v.SetDefault("SURFACE_WIDTH", d.SurfaceWidth)
	v.SetDefault("SURFACE_HEIGHT", d.SurfaceHeight)
	v.SetDefault("PADDLE_WIDTH", d.PaddleWidth)
	v.SetDefault("PADDLE_HEIGHT", d.PaddleHeight)
	v.SetDefault("BALL_RADIUS", d.BallRadius)
	v.SetDefault("MAX_LEVEL", d.MaxLevel)
	v.SetDefault("BASE_SPEED", d.BaseSpeed)
	v.SetDefault("SPEED_INCREMENT", d.SpeedIncrement)
	v.SetDefault("TRACKING_FACTOR", d.TrackingFactor)
	v.SetDefault("LEVEL_PAUSE_MS", d.LevelPause.Milliseconds())
	v.SetDefault("FRAME_RATE", d.FrameRate)
	v.SetDefault("SEED", d.Seed)

	if flags != nil {
		if f := flags.Lookup("seed"); f != nil {
			if err := v.BindPFlag("SEED", f); err != nil {
				return d, err
			}
		}
		if f := flags.Lookup("frame-rate"); f != nil {
			if err := v.BindPFlag("FRAME_RATE", f); err != nil {
				return d, err
			}
		}
	}

	var missing error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return d, fmt.Errorf("read %s: %w", path, err)
		}
		missing = ErrNoProperties
	}

	r := Rules{
		SurfaceWidth:   cast.ToFloat64(v.Get("SURFACE_WIDTH")),
		SurfaceHeight:  cast.ToFloat64(v.Get("SURFACE_HEIGHT")),
		PaddleWidth:    cast.ToFloat64(v.Get("PADDLE_WIDTH")),
		PaddleHeight:   cast.ToFloat64(v.Get("PADDLE_HEIGHT")),
		BallRadius:     cast.ToFloat64(v.Get("BALL_RADIUS")),
		MaxLevel:       cast.ToInt(v.Get("MAX_LEVEL")),
		BaseSpeed:      cast.ToFloat64(v.Get("BASE_SPEED")),
		SpeedIncrement: cast.ToFloat64(v.Get("SPEED_INCREMENT")),
		TrackingFactor: cast.ToFloat64(v.Get("TRACKING_FACTOR")),
		LevelPause:     time.Duration(cast.ToInt64(v.Get("LEVEL_PAUSE_MS"))) * time.Millisecond,
		FrameRate:      cast.ToInt(v.Get("FRAME_RATE")),
		Seed:           cast.ToInt64(v.Get("SEED")),
	}
	if err := r.Validate(); err != nil {
		return d, fmt.Errorf("read %s: %w", path, err)
	}
	return r, missing
}
