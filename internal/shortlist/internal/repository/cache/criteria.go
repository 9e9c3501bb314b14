package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ajirahub/ajirahub/internal/shortlist/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const (
	criteriaExpiration = 24 * time.Hour
)

var (
	ErrCriteriaNotFound = errors.New("筛选标准缓存未命中")
)

type CriteriaCache interface {
	Set(ctx context.Context, c domain.Criteria) error
	Get(ctx context.Context, jobId int64) (domain.Criteria, error)
	// Del 保存新标准后失效旧缓存
	Del(ctx context.Context, jobId int64) error
}

type criteriaCache struct {
	ec ecache.Cache
}

func NewCriteriaCache(ec ecache.Cache) CriteriaCache {
	return &criteriaCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "shortlist:",
		},
	}
}

func (c *criteriaCache) Set(ctx context.Context, cri domain.Criteria) error {
	data, err := json.Marshal(cri)
	if err != nil {
		return errors.Wrap(err, "序列化筛选标准失败")
	}
	return c.ec.Set(ctx, c.key(cri.JobID), string(data), criteriaExpiration)
}

func (c *criteriaCache) Get(ctx context.Context, jobId int64) (domain.Criteria, error) {
	val := c.ec.Get(ctx, c.key(jobId))
	if val.KeyNotFound() {
		return domain.Criteria{}, ErrCriteriaNotFound
	}
	if val.Err != nil {
		return domain.Criteria{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var cri domain.Criteria
	err := json.Unmarshal([]byte(val.Val.(string)), &cri)
	if err != nil {
		return domain.Criteria{}, errors.Wrap(err, "反序列化筛选标准失败")
	}
	return cri, nil
}

func (c *criteriaCache) Del(ctx context.Context, jobId int64) error {
	_, err := c.ec.Delete(ctx, c.key(jobId))
	return err
}

func (c *criteriaCache) key(jobId int64) string {
	return fmt.Sprintf("criteria:%d", jobId)
}
