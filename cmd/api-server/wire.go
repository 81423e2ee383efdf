//go:build wireinject
// +build wireinject

package main

import (
	"voteboard/config"
	"voteboard/dao"
	"voteboard/dao/cache"
	"voteboard/handler"
	"voteboard/pkg/client"
	"voteboard/pkg/database"
	"voteboard/pkg/rocketmq"
	"voteboard/pkg/server"
	"voteboard/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideRocketMQConfig,
		rocketmq.InitProducer,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Idea), "*"),
		wire.Struct(new(handler.Vote), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.AdminHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
