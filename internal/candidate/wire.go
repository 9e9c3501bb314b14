//go:build wireinject

package candidate

import (
	"github.com/ajirahub/ajirahub/internal/candidate/internal/repository"
	"github.com/ajirahub/ajirahub/internal/candidate/internal/repository/dao"
	"github.com/ajirahub/ajirahub/internal/candidate/internal/service"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(
		initProfileDAO,
		repository.NewProfileRepository,
		service.NewProfileService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initProfileDAO(db *egorm.Component) dao.ProfileDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewProfileDAO(db)
}
