package shortlist

import (
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/domain"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/service"
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/web"
)

type (
	Handler         = web.Handler
	CriteriaService = service.CriteriaService
	Service         = service.ShortlistService

	Criteria      = domain.Criteria
	Weights       = domain.Weights
	Result        = domain.Result
	Stats         = domain.Stats
	ExportOptions = domain.ExportOptions
)

var (
	ErrInvalidWeights        = domain.ErrInvalidWeights
	ErrConflictingFlags      = domain.ErrConflictingFlags
	ErrCriteriaNotConfigured = service.ErrCriteriaNotConfigured
	ErrGenerationInProgress  = service.ErrGenerationInProgress
	ErrNoExistingResults     = service.ErrNoExistingResults
)

type Module struct {
	Hdl         *Handler
	Svc         Service
	CriteriaSvc CriteriaService
}
