package domain

import (
	"fmt"
	"time"
)

type Staleness struct {
	IsStale bool
	Reason  string
}

// CheckStale 配置比结果新就提示重新生成，只做提示不拦截读取
func CheckStale(criteriaUtime, generatedAt int64) Staleness {
	if generatedAt <= 0 || criteriaUtime <= generatedAt {
		return Staleness{}
	}
	return Staleness{
		IsStale: true,
		Reason: fmt.Sprintf("筛选配置更新于 %s，晚于结果生成时间 %s，建议重新生成",
			time.UnixMilli(criteriaUtime).Format(time.DateTime),
			time.UnixMilli(generatedAt).Format(time.DateTime)),
	}
}
