package candidate

import (
	"github.com/ajirahub/ajirahub/internal/candidate/internal/domain"
	"github.com/ajirahub/ajirahub/internal/candidate/internal/service"
)

type (
	Service = service.ProfileService

	Profile      = domain.Profile
	Personal     = domain.Personal
	Education    = domain.Education
	Experience   = domain.Experience
	Professional = domain.Professional
	Clearances   = domain.Clearances
	Referee      = domain.Referee
	Compensation = domain.Compensation

	DegreeLevel  = domain.DegreeLevel
	Grade        = domain.Grade
	EmployerType = domain.EmployerType
	WorkMode     = domain.WorkMode
)

const (
	DegreeUnknown     = domain.DegreeUnknown
	DegreeCertificate = domain.DegreeCertificate
	DegreeDiploma     = domain.DegreeDiploma
	DegreeBachelors   = domain.DegreeBachelors
	DegreeMasters     = domain.DegreeMasters
	DegreeDoctorate   = domain.DegreeDoctorate

	GradeUnknown     = domain.GradeUnknown
	GradePass        = domain.GradePass
	GradeCredit      = domain.GradeCredit
	GradeSecondLower = domain.GradeSecondLower
	GradeSecondUpper = domain.GradeSecondUpper
	GradeFirstClass  = domain.GradeFirstClass

	EmployerOther      = domain.EmployerOther
	EmployerMNC        = domain.EmployerMNC
	EmployerStartup    = domain.EmployerStartup
	EmployerNGO        = domain.EmployerNGO
	EmployerGovernment = domain.EmployerGovernment

	WorkModeAny    = domain.WorkModeAny
	WorkModeRemote = domain.WorkModeRemote
	WorkModeOnsite = domain.WorkModeOnsite
	WorkModeHybrid = domain.WorkModeHybrid
)

type Module struct {
	Svc Service
}
