//go:build wireinject

package ioc

import (
	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/ajirahub/ajirahub/internal/company"
	"github.com/ajirahub/ajirahub/internal/job"
	"github.com/ajirahub/ajirahub/internal/shortlist"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		candidate.InitModule,
		job.InitModule,
		company.InitModule,
		shortlist.InitModule,
		wire.FieldsOf(new(*shortlist.Module), "Hdl"),
		InitSession,
		initGinxServer)
	return new(App), nil
}
