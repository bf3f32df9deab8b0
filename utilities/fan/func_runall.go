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

package fan

import (
	"context"
	"fmt"

	"github.com/dograga/compliance-checks/utilities/cai"
	"golang.org/x/sync/errgroup"
)

// RunAll runs every task with at most limit of them in flight, waits for all of
// them, then aggregates records and error strings in task submission order.
// Task errors and panics are contained, they never fail the run
func RunAll(ctx context.Context, tasks []Task, limit int) ([]cai.MergedRecord, []string) {
	if limit < 1 {
		limit = 1
	}
	recordsByTask := make([][]cai.MergedRecord, len(tasks))
	errorByTask := make([]string, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for idx, task := range tasks {
		idx, task := idx, task // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					errorByTask[idx] = fmt.Sprintf("%s: panic: %v", task.Describe(), r)
				}
			}()
			// records travel even when the task also reports an error, so a
			// failed policy fetch still yields a degraded record
			records, err := task.Do(gctx)
			recordsByTask[idx] = records
			if err != nil {
				errorByTask[idx] = fmt.Sprintf("%s: %v", task.Describe(), err)
			}
			return nil
		})
	}
	// tasks always return nil, Wait only synchronizes
	g.Wait()

	var records []cai.MergedRecord
	var errs []string
	for idx := range tasks {
		records = append(records, recordsByTask[idx]...)
		if errorByTask[idx] != "" {
			errs = append(errs, errorByTask[idx])
		}
	}
	return records, errs
}
