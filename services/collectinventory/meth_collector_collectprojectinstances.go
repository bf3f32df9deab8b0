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
	"fmt"
	"time"

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/erm"
	"github.com/dograga/compliance-checks/utilities/fan"
	"github.com/google/uuid"
)

// CollectProjectInstances walks one project's zones through the compute API,
// one task per zone, then one nested task per instance. The project number is
// resolved first, the instance document IDs need it
func (collector *Collector) CollectProjectInstances(ctx context.Context, projectID string, persist bool) (*cai.CollectionResult, error) {
	parentScope := "projects/" + projectID
	started := time.Now()
	collectionID := uuid.New().String()

	projectNumber, err := collector.projectNumbers.GetProjectNumber(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("getProjectNumber %s: %w", projectID, err)
	}

	var zones []string
	err = erm.RetryTransient(ctx, collector.retriesNumber, collector.retryBaseDelay, func() error {
		var listErr error
		zones, listErr = collector.instances.ListZones(ctx, projectID)
		return listErr
	})
	if err != nil {
		return nil, fmt.Errorf("listZones %s: %w", projectID, err)
	}

	now := time.Now().UTC()
	tasks := make([]fan.Task, 0, len(zones))
	for _, zone := range zones {
		tasks = append(tasks, &zoneTask{
			collector:     collector,
			parentScope:   parentScope,
			projectID:     projectID,
			projectNumber: projectNumber,
			zone:          zone,
			now:           now,
		})
	}
	records, errs := fan.RunAll(ctx, tasks, collector.concurrency)
	result := &cai.CollectionResult{
		ScopeID: parentScope,
		Records: records,
		Errors:  errs,
		Total:   len(records),
	}
	if persist {
		collector.persist(ctx, result)
	}
	collector.logCompletion("collect_project_instances_done", collectionID, result, started)
	return result, nil
}
