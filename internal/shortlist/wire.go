//go:build wireinject

package shortlist

import (
	"github.com/ajirahub/ajirahub/internal/candidate"
	"github.com/ajirahub/ajirahub/internal/company"
	"github.com/ajirahub/ajirahub/internal/job"
	"github.com/ajirahub/ajirahub/internal/pkg/snowflake"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/event"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/repository"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/repository/cache"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/repository/dao"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/service"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	candidateModule *candidate.Module,
	jobModule *job.Module,
	companyModule *company.Module) *Module {
	wire.Build(
		initResultDAO,
		dao.NewCriteriaDAO,
		cache.NewCriteriaCache,
		repository.NewCriteriaRepository,
		repository.NewResultRepository,
		initProducer,
		initIDGenerator,
		service.NewCriteriaService,
		service.NewShortlistService,
		web.NewHandler,
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*company.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initResultDAO(db *egorm.Component) dao.ResultDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewResultDAO(db)
}

func initProducer(q mq.MQ) event.ShortlistGeneratedProducer {
	producer, err := event.NewShortlistGeneratedProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

func initIDGenerator() snowflake.Generator {
	gen, err := snowflake.NewMultiAppGenerator(
		uint(econf.GetInt("snowflake.node")), snowflake.AppShortlist+1)
	if err != nil {
		panic(err)
	}
	return gen
}
