package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
	console bool
}

type loggerProperties struct {
	logFilename  string
	maxSize      int
	maxBackups   int
	maxAge       int
	compressFlag bool
	level        string
	console      bool
}

func readLoggerProperties(path string) (loggerProperties, error) {
	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	v.SetConfigType("properties")
	v.AddConfigPath(filepath.Dir(path))

	v.SetDefault("logFilename", "logs/pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
	v.SetDefault("console", false)

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return loggerProperties{}, fmt.Errorf("logger config %s: %w", path, err)
		}
	}

	return loggerProperties{
		logFilename:  cast.ToString(v.Get("logFilename")),
		maxSize:      cast.ToInt(v.Get("maxSize")),
		maxBackups:   cast.ToInt(v.Get("maxBackups")),
		maxAge:       cast.ToInt(v.Get("maxAge")),
		compressFlag: cast.ToBool(v.Get("compress")),
		level:        cast.ToString(v.Get("level")),
		console:      cast.ToBool(v.Get("console")),
	}, nil
}

// Init 依 logger.properties 設定 logrus；檔案不存在時使用預設值
func (l *Logger) Init(path string) error {
	props, err := readLoggerProperties(path)
	if err != nil {
		return err
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   props.logFilename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compressFlag,
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(loggerConfig)
	logrus.SetLevel(parseLevel(props.level))
	l.console = props.console
	return nil
}

// SetOutput replaces the rotating file, mostly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

func parseLevel(level string) logrus.Level {
	switch cast.ToString(level) {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// Session 帶有 session id 的 log entry
func (l *Logger) Session(id string) *logrus.Entry {
	return logrus.WithField("session", id)
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.echo("Debug:", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.echo("Warn:", message)
}

//終端機畫面開著時不能印到 stdout
func (l *Logger) echo(prefix, message string) {
	if l.console {
		fmt.Fprintln(os.Stderr, prefix, message)
	}
}
