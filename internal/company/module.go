package company

import (
	"github.com/ajirahub/ajirahub/internal/company/internal/domain"
	"github.com/ajirahub/ajirahub/internal/company/internal/service"
)

type (
	Service = service.CompanyService
	Company = domain.Company
)

type Module struct {
	Svc Service
}
