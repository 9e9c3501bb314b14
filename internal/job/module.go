package job

import (
	"github.com/ajirahub/ajirahub/internal/job/internal/domain"
	"github.com/ajirahub/ajirahub/internal/job/internal/service"
)

type (
	Service     = service.JobService
	Job         = domain.Job
	Application = domain.Application
	JobStatus   = domain.JobStatus
)

const (
	JobStatusOpen   = domain.JobStatusOpen
	JobStatusClosed = domain.JobStatusClosed
)

type Module struct {
	Svc Service
}
