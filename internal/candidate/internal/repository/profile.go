package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"

	"github.com/ajirahub/ajirahub/internal/candidate/internal/domain"
	"github.com/ajirahub/ajirahub/internal/candidate/internal/repository/dao"
)

type ProfileRepository interface {
	Save(ctx context.Context, p domain.Profile) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Profile, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Profile, error)
	List(ctx context.Context, offset, limit int) ([]domain.Profile, error)
	Count(ctx context.Context) (int64, error)
}

type profileRepository struct {
	dao dao.ProfileDAO
}

func NewProfileRepository(d dao.ProfileDAO) ProfileRepository {
	return &profileRepository{dao: d}
}

func (r *profileRepository) Save(ctx context.Context, p domain.Profile) (int64, error) {
	return r.dao.Save(ctx, toEntity(p))
}

func (r *profileRepository) FindById(ctx context.Context, id int64) (domain.Profile, error) {
	p, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	return toDomain(p), nil
}

func (r *profileRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Profile, error) {
	ps, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Profile) domain.Profile {
		return toDomain(src)
	}), nil
}

func (r *profileRepository) List(ctx context.Context, offset, limit int) ([]domain.Profile, error) {
	ps, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Profile) domain.Profile {
		return toDomain(src)
	}), nil
}

func (r *profileRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func toEntity(p domain.Profile) dao.Profile {
	return dao.Profile{
		Id:       p.ID,
		FullName: p.FullName,
		Email:    p.Email,
		Phone:    p.Phone,
		Personal: sqlx.JsonColumn[dao.Personal]{Valid: true, Val: dao.Personal{
			Age:         p.Personal.Age,
			Gender:      p.Personal.Gender,
			Nationality: p.Personal.Nationality,
			County:      p.Personal.County,
			PLWD:        p.Personal.PLWD,
		}},
		Education: sqlx.JsonColumn[[]dao.Education]{Valid: true, Val: slice.Map(p.Education,
			func(idx int, src domain.Education) dao.Education {
				return dao.Education{
					Level:       src.Level.ToUint8(),
					Field:       src.Field,
					Institution: src.Institution,
					Grade:       src.Grade.ToUint8(),
				}
			})},
		Experience: sqlx.JsonColumn[[]dao.Experience]{Valid: true, Val: slice.Map(p.Experience,
			func(idx int, src domain.Experience) dao.Experience {
				return dao.Experience{
					Title:        src.Title,
					Industry:     src.Industry,
					EmployerType: uint8(src.EmployerType),
					Years:        src.Years,
					Senior:       src.Senior,
					Management:   src.Management,
					TeamSize:     src.TeamSize,
					Current:      src.Current,
				}
			})},
		Skills: sqlx.JsonColumn[[]string]{Valid: true, Val: p.Skills},
		Professional: sqlx.JsonColumn[dao.Professional]{Valid: true, Val: dao.Professional{
			Memberships:            p.Professional.Memberships,
			GoodStanding:           p.Professional.GoodStanding,
			LeadershipCourse:       p.Professional.LeadershipCourse,
			LeadershipCourseMonths: p.Professional.LeadershipCourseMonths,
			Certifications:         p.Professional.Certifications,
			Publications:           p.Professional.Publications,
			PortfolioURL:           p.Professional.PortfolioURL,
			GithubURL:              p.Professional.GithubURL,
			LinkedinURL:            p.Professional.LinkedinURL,
		}},
		Clearances: sqlx.JsonColumn[dao.Clearances]{Valid: true, Val: dao.Clearances{
			Tax:  p.Clearances.Tax,
			HELB: p.Clearances.HELB,
			DCI:  p.Clearances.DCI,
			CRB:  p.Clearances.CRB,
			EACC: p.Clearances.EACC,
		}},
		Referees: sqlx.JsonColumn[[]dao.Referee]{Valid: true, Val: slice.Map(p.Referees,
			func(idx int, src domain.Referee) dao.Referee {
				return dao.Referee{Name: src.Name, Senior: src.Senior, Academic: src.Academic}
			})},
		Compensation: sqlx.JsonColumn[dao.Compensation]{Valid: true, Val: dao.Compensation{
			ExpectedSalary:       p.Compensation.ExpectedSalary,
			NoticeDays:           p.Compensation.NoticeDays,
			ImmediatelyAvailable: p.Compensation.ImmediatelyAvailable,
			WorkMode:             p.Compensation.WorkMode.ToUint8(),
		}},
	}
}

func toDomain(p dao.Profile) domain.Profile {
	return domain.Profile{
		ID:       p.Id,
		FullName: p.FullName,
		Email:    p.Email,
		Phone:    p.Phone,
		Personal: domain.Personal{
			Age:         p.Personal.Val.Age,
			Gender:      p.Personal.Val.Gender,
			Nationality: p.Personal.Val.Nationality,
			County:      p.Personal.Val.County,
			PLWD:        p.Personal.Val.PLWD,
		},
		Education: slice.Map(p.Education.Val, func(idx int, src dao.Education) domain.Education {
			return domain.Education{
				Level:       domain.DegreeLevel(src.Level),
				Field:       src.Field,
				Institution: src.Institution,
				Grade:       domain.Grade(src.Grade),
			}
		}),
		Experience: slice.Map(p.Experience.Val, func(idx int, src dao.Experience) domain.Experience {
			return domain.Experience{
				Title:        src.Title,
				Industry:     src.Industry,
				EmployerType: domain.EmployerType(src.EmployerType),
				Years:        src.Years,
				Senior:       src.Senior,
				Management:   src.Management,
				TeamSize:     src.TeamSize,
				Current:      src.Current,
			}
		}),
		Skills: p.Skills.Val,
		Professional: domain.Professional{
			Memberships:            p.Professional.Val.Memberships,
			GoodStanding:           p.Professional.Val.GoodStanding,
			LeadershipCourse:       p.Professional.Val.LeadershipCourse,
			LeadershipCourseMonths: p.Professional.Val.LeadershipCourseMonths,
			Certifications:         p.Professional.Val.Certifications,
			Publications:           p.Professional.Val.Publications,
			PortfolioURL:           p.Professional.Val.PortfolioURL,
			GithubURL:              p.Professional.Val.GithubURL,
			LinkedinURL:            p.Professional.Val.LinkedinURL,
		},
		Clearances: domain.Clearances{
			Tax:  p.Clearances.Val.Tax,
			HELB: p.Clearances.Val.HELB,
			DCI:  p.Clearances.Val.DCI,
			CRB:  p.Clearances.Val.CRB,
			EACC: p.Clearances.Val.EACC,
		},
		Referees: slice.Map(p.Referees.Val, func(idx int, src dao.Referee) domain.Referee {
			return domain.Referee{Name: src.Name, Senior: src.Senior, Academic: src.Academic}
		}),
		Compensation: domain.Compensation{
			ExpectedSalary:       p.Compensation.Val.ExpectedSalary,
			NoticeDays:           p.Compensation.Val.NoticeDays,
			ImmediatelyAvailable: p.Compensation.Val.ImmediatelyAvailable,
			WorkMode:             domain.WorkMode(p.Compensation.Val.WorkMode),
		},
		Utime: p.Utime,
	}
}
