package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/botsim"
	"github.com/oomph-ac/botsim/event"
	"github.com/oomph-ac/botsim/session"
	"github.com/oomph-ac/botsim/settings"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Run struct {
		Settings string  `help:"Settings file to load. Defaults are used if it doesn't exist." default:"botsim.toml" type:"path"`
		Ticks    int     `help:"Amount of physics ticks to simulate." default:"100"`
		Angle    float64 `help:"Direction to walk in, in degrees. Zero faces positive Z."`
		Idle     bool    `help:"Stand still instead of walking."`
		Sprint   bool    `help:"Sprint instead of walking."`
		Jump     bool    `help:"Jump whenever the avatar lands."`
		Realtime bool    `help:"Run ticks on the clock instead of as fast as possible."`
	} `cmd:"" help:"Simulate an avatar moving over a flat stone world."`

	Config struct {
		Path string `arg:"" optional:"" default:"botsim.toml" help:"Where to write the settings file." type:"path"`
	} `cmd:"" help:"Write the default settings file."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("botsim"),
		kong.Description("simulates the movement of an avatar in a voxel world"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))
		mgr := statsview.New()
		go mgr.Start()
	}

	switch ctx.Command() {
	case "run":
		if err := runCommand(); err != nil {
			writeError(err)
		}
	case "config", "config <path>":
		if err := settings.SaveDefault(CLI.Config.Path); err != nil {
			writeError(err)
		}
	}
}

func loadSettings(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings.DefaultSettings(), nil
	}
	return settings.Load(path)
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	if CLI.Debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})), nil
}

// logConn stands in for a server connection, logging every packet written to it.
type logConn struct {
	log *slog.Logger
}

func (c logConn) WritePacket(pk packet.Packet) error {
	switch pk := pk.(type) {
	case *packet.MovePlayer:
		c.log.Debug("move player", "pos", pk.Position, "yaw", pk.Yaw, "pitch", pk.Pitch, "onGround", pk.OnGround)
	case *packet.PlayerAuthInput:
		c.log.Debug("player auth input", "move", pk.MoveVector)
	case *packet.PlayerAction:
		c.log.Debug("player action", "action", pk.ActionType)
	}
	return nil
}

func runCommand() error {
	s, err := loadSettings(CLI.Run.Settings)
	if err != nil {
		return err
	}
	log, err := newLogger(s.Log.Level)
	if err != nil {
		return err
	}

	bot, err := botsim.NewBot(s, session.NewPacketNet(logConn{log: log}, 1, log), log)
	if err != nil {
		return err
	}
	defer bot.Close()
	bot.World.Fill(cube.Pos{-128, 0, -128}, cube.Pos{128, 0, 128}, block.Stone{})

	c := bot.Controller
	if CLI.Run.Sprint {
		c.Sprint()
	}
	steer := func() {
		if !CLI.Run.Idle {
			c.MoveAngle(CLI.Run.Angle, false)
		}
		if CLI.Run.Jump {
			c.Jump()
		}
	}
	steer()
	// Subscribed after the controller, so the controls set here apply to the next tick.
	bot.Bus.PhysicsTick.Subscribe(func(t event.Tick) {
		st := c.State()
		log.Info("tick", "n", t.N, "pos", st.Position, "vel", st.Velocity, "onGround", st.OnGround)
		if t.N >= uint64(CLI.Run.Ticks) {
			bot.Scheduler.Close()
			return
		}
		steer()
	})
	bot.Bus.Bail.Subscribe(func(b event.Bail) {
		log.Warn("collision search bailed", "pos", b.Position, "explored", b.Explored)
	})

	if !CLI.Run.Realtime {
		bot.Scheduler.Step(CLI.Run.Ticks)
		return nil
	}
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := bot.Scheduler.Run(sigCtx); err != nil && sigCtx.Err() == nil {
		return err
	}
	return nil
}
