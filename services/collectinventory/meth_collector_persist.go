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
	"log"
	"time"

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/glo"
)

// persist writes the records to FireStore and BigQuery then publishes the
// summary. Persistence failures degrade to result errors, the collection
// already succeeded
func (collector *Collector) persist(ctx context.Context, result *cai.CollectionResult) {
	if collector.store != nil {
		for _, record := range result.Records {
			if err := collector.store.UpsertRecord(ctx, record); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("upsertRecord %s: %v", record.AssetName, err))
			}
		}
	}
	if collector.inserter != nil {
		if err := collector.inserter.InsertRecords(ctx, result.Records); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("insertRecords: %v", err))
		}
	}
	if collector.publisher != nil {
		if err := collector.publisher.PublishSummary(ctx, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("publishSummary: %v", err))
		}
	}
}

func (collector *Collector) logCompletion(message string, collectionID string, result *cai.CollectionResult, started time.Time) {
	now := time.Now()
	entry := glo.Entry{
		MicroserviceName: microserviceName,
		Severity:         "NOTICE",
		Message:          message,
		CollectionID:     collectionID,
		ParentScope:      result.ScopeID,
		AssetCount:       int64(result.Total),
		ErrorCount:       int64(len(result.Errors)),
		LatencySeconds:   now.Sub(started).Seconds(),
		Now:              now,
	}
	log.Println(entry)
	if collector.cloudLogger != nil {
		collector.cloudLogger.Log(entry)
	}
}
