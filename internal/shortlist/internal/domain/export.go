package domain

import "github.com/ajirahub/ajirahub/internal/candidate"

const (
	ExportModeAll = "all"
	// ExportModeShortlistedOnly 只导出未被取消资格的结果
	ExportModeShortlistedOnly = "shortlistedOnly"
)

type ExportOptions struct {
	Mode        string
	DegreeLevel candidate.DegreeLevel
	Status      string
	MinScore    float64
	TopN        int
}

// FilterForExport 在已排好名的结果上做交集过滤，产出导出行集
func FilterForExport(results []Result, opts ExportOptions) []Result {
	res := make([]Result, 0, len(results))
	for _, r := range results {
		if opts.Mode != ExportModeAll && r.EffectivelyDisqualified() {
			continue
		}
		if opts.DegreeLevel > candidate.DegreeUnknown && r.CandidateDegree < opts.DegreeLevel {
			continue
		}
		if opts.Status != "" && r.Status() != opts.Status {
			continue
		}
		if opts.MinScore > 0 && r.EffectiveTotalScore() < opts.MinScore {
			continue
		}
		res = append(res, r)
		if opts.TopN > 0 && len(res) >= opts.TopN {
			break
		}
	}
	return res
}
