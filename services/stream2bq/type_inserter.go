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
	"github.com/dograga/compliance-checks/utilities/gbq"
	"github.com/dograga/compliance-checks/utilities/solution"
)

// Inserter streams records into the BigQuery records table
type Inserter struct {
	inserter *bigquery.Inserter
	schema   bigquery.Schema
}

// NewInserter ensures the dataset and the records table exist then builds an inserter on the table
func NewInserter(ctx context.Context, bigQueryClient *bigquery.Client, settings *solution.Settings) (*Inserter, error) {
	table, err := gbq.GetRecords(ctx, bigQueryClient, settings.Hosting.Bigquery.Dataset.Location, settings.Hosting.Bigquery.Dataset.Name)
	if err != nil {
		return nil, fmt.Errorf("gbq.GetRecords: %v", err)
	}
	return &Inserter{
		inserter: table.Inserter(),
		schema:   gbq.GetRecordsSchema(),
	}, nil
}
