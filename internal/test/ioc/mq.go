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

package testioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// InitMQ 测试里用内存 MQ 代替 Kafka
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		topics := []string{
			"shortlist_events",
		}
		qq := memory.NewMQ()
		for _, t := range topics {
			err := qq.CreateTopic(context.Background(), t, 1)
			if err != nil {
				panic(err)
			}
		}
		q = qq
	})
	return q
}
