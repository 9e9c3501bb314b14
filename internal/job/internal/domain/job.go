package domain

import "github.com/ajirahub/ajirahub/internal/candidate"

type JobStatus uint8

const (
	JobStatusUnknown JobStatus = 0
	JobStatusOpen    JobStatus = 1
	JobStatusClosed  JobStatus = 2
)

func (s JobStatus) ToUint8() uint8 {
	return uint8(s)
}

type Job struct {
	ID        int64
	CompanyID int64
	Title     string
	// WorkMode 岗位的办公方式，参与资格硬性校验
	WorkMode candidate.WorkMode
	Status   JobStatus
	Ctime    int64
	Utime    int64
}

type ApplicationStatus uint8

const (
	ApplicationStatusUnknown   ApplicationStatus = 0
	ApplicationStatusSubmitted ApplicationStatus = 1
	ApplicationStatusWithdrawn ApplicationStatus = 2
)

type Application struct {
	ID          int64
	JobID       int64
	CandidateID int64
	Status      ApplicationStatus
	Ctime       int64
}
