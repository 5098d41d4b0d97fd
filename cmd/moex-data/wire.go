//go:build wireinject
// +build wireinject

package main

import (
	"moex-data/internal/app"
	"moex-data/internal/iss"
	"moex-data/internal/saver"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Client *iss.Client
	Saver  saver.PacketSaver
}

// InitializeApp builds App (Config + ISS client + PacketSaver) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvidePacketSaver,
		app.ProvideClient,
		wire.Struct(new(App), "Config", "Client", "Saver"),
	)
	return nil, nil
}
