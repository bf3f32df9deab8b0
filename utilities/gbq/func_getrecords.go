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

package gbq

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/dograga/compliance-checks/utilities/erm"
)

const getRecordsRetries time.Duration = 4

// GetRecords provision records table and its dataset
func GetRecords(ctx context.Context, bigQueryClient *bigquery.Client, location string, datasetName string) (table *bigquery.Table, err error) {
	var i time.Duration
	for i = 1; i < getRecordsRetries; i++ {
		table, err = getRecordsOnce(ctx, bigQueryClient, location, datasetName)
		if err == nil {
			return table, nil
		}
		if erm.IsNotTransientElseWait(err, i) {
			return nil, err
		}
	}
	return nil, err
}

func getRecordsOnce(ctx context.Context, bigQueryClient *bigquery.Client, location string, datasetName string) (table *bigquery.Table, err error) {
	dataset, err := getDataset(ctx, datasetName, location, bigQueryClient)
	if err != nil {
		return nil, err
	}
	recordsTable, err := getTable(ctx, "records", dataset)
	if err != nil {
		return nil, err
	}
	return recordsTable, nil
}
