package fx

import (
	"rift-rewind/internal/config"
	"rift-rewind/internal/database"
	"rift-rewind/internal/logger"
	"rift-rewind/internal/repository"
	"rift-rewind/internal/riot"
	"rift-rewind/internal/server"
	"rift-rewind/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// riot client, exposed to the services as the RiotAPI interface
	fx.Provide(fx.Annotate(riot.NewClient, fx.As(new(service.RiotAPI)))),
	// repos
	fx.Provide(repository.NewRosterRepository),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewStatsService),
	fx.Provide(service.NewRecapService),
	fx.Provide(service.NewCompareService),
	// server
	fx.Provide(server.New),
)
