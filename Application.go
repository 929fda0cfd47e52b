package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"LevelPong/core"
	"LevelPong/logger"

	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("pong", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "properties/game.properties", "game properties file")
	loggerPath := flags.String("logger", "logger.properties", "logger properties file")
	flags.Int64("seed", 0, "random seed for ball launches (0 uses the clock)")
	flags.Int("frame-rate", 60, "frames per second")
	_ = flags.Parse(os.Args[1:])

	if err := logger.Log.Init(*loggerPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	rules, err := core.ReadRules(*configPath, flags)
	if errors.Is(err, core.ErrNoProperties) {
		logger.Log.Warn(fmt.Sprintf(logger.ConfigMissingMsg, *configPath))
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	seed := rules.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := start(rules, rand.New(rand.NewSource(seed))); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
