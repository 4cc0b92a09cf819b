//go:build wireinject
// +build wireinject

package botsim

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/oomph-ac/botsim/event"
	"github.com/oomph-ac/botsim/player"
	"github.com/oomph-ac/botsim/settings"
)

// NewBot returns a Bot configured by the settings passed, reporting its movement over net.
func NewBot(s settings.Settings, net player.Net, log *slog.Logger) (*Bot, error) {
	wire.Build(
		event.NewBus,
		provideWorld,
		provideVolume,
		provideOracle,
		provideResolver,
		provideState,
		provideIntegrator,
		player.NewController,
		provideScheduler,
		wire.Struct(new(Bot), "*"),
	)
	return nil, nil
}
