package settings

import (
	"errors"
	"os"

	"github.com/oomph-ac/botsim/game"
	"github.com/oomph-ac/botsim/oerror"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for a simulated avatar and the ticks driving it.
type Settings struct {
	Physics struct {
		// SearchLimit is the amount of nodes the collision search may explore before bailing.
		SearchLimit int
		// Tolerance is the slack allowed when checking that a correction does not accelerate the avatar.
		Tolerance float64
		// WalkingSpeed is the acceleration applied while walking on the ground.
		WalkingSpeed float64
	}
	Avatar struct {
		Width  float64
		Height float64
		SpawnX float64
		SpawnY float64
		SpawnZ float64
	}
	Ticks struct {
		// PhysicsRate is the amount of physics ticks run per second.
		PhysicsRate int
		// ClientRate is the amount of movement updates reported per second.
		ClientRate int
	}
	Log struct {
		// Level is one of debug, info, warn or error.
		Level string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Physics.SearchLimit = game.DefaultSearchLimit
	settings.Physics.Tolerance = game.MTVTolerance
	settings.Physics.WalkingSpeed = game.DefaultWalkingSpeed

	settings.Avatar.Width = game.PlayerWidth
	settings.Avatar.Height = game.PlayerHeight
	settings.Avatar.SpawnY = 1

	settings.Ticks.PhysicsRate = game.PhysicsTickRate
	settings.Ticks.ClientRate = game.PhysicsTickRate

	settings.Log.Level = "info"
	return settings
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return oerror.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return oerror.New("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return oerror.New("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Fields missing from the file keep their default values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, oerror.New("settings file doesn't exist")
	} else if err != nil {
		return Settings{}, oerror.New("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, oerror.New("error decoding config: %w", err)
	}
	return settings, nil
}
