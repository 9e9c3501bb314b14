package web

import (
	"github.com/ajirahub/ajirahub/internal/shortlist/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCriteriaResult = ginx.Result{
		Code: errs.InvalidCriteria.Code,
		Msg:  errs.InvalidCriteria.Msg,
	}
	criteriaNotConfiguredResult = ginx.Result{
		Code: errs.CriteriaNotConfigured.Code,
		Msg:  errs.CriteriaNotConfigured.Msg,
	}
	generationInProgressResult = ginx.Result{
		Code: errs.GenerationInProgress.Code,
		Msg:  errs.GenerationInProgress.Msg,
	}
	noExistingResultsResult = ginx.Result{
		Code: errs.NoExistingResults.Code,
		Msg:  errs.NoExistingResults.Msg,
	}
	resultNotFoundResult = ginx.Result{
		Code: errs.ResultNotFound.Code,
		Msg:  errs.ResultNotFound.Msg,
	}
	invalidManualScoreResult = ginx.Result{
		Code: errs.InvalidManualScore.Code,
		Msg:  errs.InvalidManualScore.Msg,
	}
	jobNotFoundResult = ginx.Result{
		Code: errs.JobNotFound.Code,
		Msg:  errs.JobNotFound.Msg,
	}
)
