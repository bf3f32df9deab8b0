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

package stream2bq

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/dograga/compliance-checks/utilities/cai"
)

// InsertRecords streams the records in one insert call
func (inserter *Inserter) InsertRecords(ctx context.Context, records []cai.MergedRecord) error {
	if len(records) == 0 {
		return nil
	}
	savers := make([]*bigquery.StructSaver, 0, len(records))
	for _, record := range records {
		savers = append(savers, &bigquery.StructSaver{
			Struct:   newRecordRow(record),
			Schema:   inserter.schema,
			InsertID: insertID(record),
		})
	}
	if err := inserter.inserter.Put(ctx, savers); err != nil {
		return fmt.Errorf("inserter.Put: %v", err)
	}
	return nil
}

// insertID makes retried inserts of the same collection idempotent on the BigQuery side
func insertID(record cai.MergedRecord) string {
	return fmt.Sprintf("%s%v", record.AssetName, record.Timestamp)
}
