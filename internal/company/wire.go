//go:build wireinject

package company

import (
	"github.com/ajirahub/ajirahub/internal/company/internal/repository"
	"github.com/ajirahub/ajirahub/internal/company/internal/repository/dao"
	"github.com/ajirahub/ajirahub/internal/company/internal/service"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(
		initCompanyDAO,
		repository.NewCompanyRepository,
		service.NewCompanyService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initCompanyDAO(db *egorm.Component) dao.CompanyDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMCompanyDAO(db)
}
