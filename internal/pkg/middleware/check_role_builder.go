// Copyright 2024 ajirahub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckRoleMiddlewareBuilder 校验会话中的 role 声明，
// 不在允许列表里的一律 403
type CheckRoleMiddlewareBuilder struct {
	allowed map[string]struct{}
	logger  *elog.Component
	sp      session.Provider
}

func NewCheckRoleMiddlewareBuilder(roles ...string) *CheckRoleMiddlewareBuilder {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return &CheckRoleMiddlewareBuilder{
		allowed: allowed,
		logger:  elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		role := claims.Get("role").StringOrDefault("")
		if _, ok := c.allowed[role]; !ok {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("角色无权限",
				elog.Int64("uid", claims.Uid),
				elog.String("role", role))
			return
		}
	}
}
