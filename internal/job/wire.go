//go:build wireinject

package job

import (
	"github.com/ajirahub/ajirahub/internal/job/internal/repository"
	"github.com/ajirahub/ajirahub/internal/job/internal/repository/dao"
	"github.com/ajirahub/ajirahub/internal/job/internal/service"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(
		initJobDAO,
		repository.NewJobRepository,
		service.NewJobService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initJobDAO(db *egorm.Component) dao.JobDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewJobDAO(db)
}
