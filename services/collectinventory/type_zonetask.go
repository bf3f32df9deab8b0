// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collectinventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/erm"
	"github.com/dograga/compliance-checks/utilities/fan"
)

// zoneTask lists one zone's instances then fans out one task per instance
// A zone that cannot be listed costs one error, the other zones are unaffected
type zoneTask struct {
	collector     *Collector
	parentScope   string
	projectID     string
	projectNumber string
	zone          string
	now           time.Time
}

func (task *zoneTask) Describe() string {
	return "zone " + task.zone
}

func (task *zoneTask) Do(ctx context.Context) ([]cai.MergedRecord, error) {
	var instanceNames []string
	err := erm.RetryTransient(ctx, task.collector.retriesNumber, task.collector.retryBaseDelay, func() error {
		var listErr error
		instanceNames, listErr = task.collector.instances.ListInstances(ctx, task.projectID, task.zone)
		return listErr
	})
	if err != nil {
		return nil, fmt.Errorf("listInstances: %v", err)
	}
	instanceTasks := make([]fan.Task, 0, len(instanceNames))
	for _, instanceName := range instanceNames {
		instanceTasks = append(instanceTasks, &instanceTask{
			collector:     task.collector,
			parentScope:   task.parentScope,
			projectID:     task.projectID,
			projectNumber: task.projectNumber,
			zone:          task.zone,
			instanceName:  instanceName,
			now:           task.now,
		})
	}
	records, errs := fan.RunAll(ctx, instanceTasks, task.collector.concurrency)
	if len(errs) > 0 {
		return records, errors.New(strings.Join(errs, "; "))
	}
	return records, nil
}
