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
	"errors"
	"net/http/httptest"
	"testing"

	sessmocks "github.com/ajirahub/ajirahub/internal/test/mocks"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCheckRole(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) session.Provider
		roles    []string
		wantCode int
	}{
		{
			name: "未登录",
			mock: func(ctrl *gomock.Controller) session.Provider {
				mockP := sessmocks.NewMockProvider(ctrl)
				mockP.EXPECT().Get(gomock.Any()).Return(nil, errors.New("mock no session"))
				return mockP
			},
			roles:    []string{"hr", "admin"},
			wantCode: 403,
		},
		{
			name: "角色在允许列表",
			mock: func(ctrl *gomock.Controller) session.Provider {
				mockSession := sessmocks.NewMockSession(ctrl)
				mockSession.EXPECT().Claims().Return(session.Claims{
					Uid:  2801,
					SSID: "ssid-2801",
					Data: map[string]string{
						"role": "hr",
					},
				})
				mockP := sessmocks.NewMockProvider(ctrl)
				mockP.EXPECT().Get(gomock.Any()).Return(mockSession, nil)
				return mockP
			},
			roles:    []string{"hr", "admin"},
			wantCode: 200,
		},
		{
			name: "角色不在允许列表",
			mock: func(ctrl *gomock.Controller) session.Provider {
				mockSession := sessmocks.NewMockSession(ctrl)
				mockSession.EXPECT().Claims().Return(session.Claims{
					Uid:  2802,
					SSID: "ssid-2802",
					Data: map[string]string{
						"role": "candidate",
					},
				})
				mockP := sessmocks.NewMockProvider(ctrl)
				mockP.EXPECT().Get(gomock.Any()).Return(mockSession, nil)
				return mockP
			},
			roles:    []string{"hr", "admin"},
			wantCode: 403,
		},
		{
			name: "会话里没有角色",
			mock: func(ctrl *gomock.Controller) session.Provider {
				mockSession := sessmocks.NewMockSession(ctrl)
				mockSession.EXPECT().Claims().Return(session.Claims{
					Uid:  2803,
					SSID: "ssid-2803",
				})
				mockP := sessmocks.NewMockProvider(ctrl)
				mockP.EXPECT().Get(gomock.Any()).Return(mockSession, nil)
				return mockP
			},
			roles:    []string{"hr", "admin"},
			wantCode: 403,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			builder := NewCheckRoleMiddlewareBuilder(tc.roles...)
			builder.sp = tc.mock(ctrl)
			hdl := builder.Build()
			hdl(c)
			assert.Equal(t, tc.wantCode, c.Writer.Status())
		})
	}
}
