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
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/dograga/compliance-checks/utilities/str"
)

func getTable(ctx context.Context, tableName string, dataset *bigquery.Dataset) (table *bigquery.Table, err error) {
	var schema bigquery.Schema
	switch tableName {
	case "records":
		schema = GetRecordsSchema()
	}

	table = dataset.Table(tableName)
	tableMetadata, err := table.Metadata(ctx)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "notfound") {
			var tableToCreateMetadata bigquery.TableMetadata
			tableToCreateMetadata.Name = tableName
			tableToCreateMetadata.Description = fmt.Sprintf("IAM policy compliance checks - %s", tableName)
			tableToCreateMetadata.Labels = map[string]string{"name": strings.ToLower(tableName)}

			var timePartitioning bigquery.TimePartitioning
			timePartitioning.Type = "DAY"
			timePartitioning.Expiration = time.Duration(0)
			tableToCreateMetadata.TimePartitioning = &timePartitioning
			tableToCreateMetadata.Schema = schema

			err = table.Create(ctx, &tableToCreateMetadata)
			if err != nil {
				// deal with concurent executions
				if strings.Contains(strings.ToLower(err.Error()), "already exists") {
					tableMetadata, err = table.Metadata(ctx)
					if err != nil {
						return nil, err
					}
				}
				return nil, fmt.Errorf("table.Create %v", err)
			}
			log.Printf("gbq created table %s labels %s", tableName, str.FlattenMapStringString(tableToCreateMetadata.Labels))
			return table, nil
		}
		return nil, fmt.Errorf("table.Metadata(ctx) %v", err)
	}
	needToUpdate := false
	var tableMetadataToUpdate bigquery.TableMetadataToUpdate
	// Labels
	if tableMetadata.Labels != nil {
		if value, ok := tableMetadata.Labels["name"]; ok {
			if !strings.EqualFold(value, tableMetadata.Name) {
				needToUpdate = true
			}
		} else {
			needToUpdate = true
		}
	} else {
		needToUpdate = true
	}
	if needToUpdate {
		tableMetadataToUpdate.SetLabel("name", strings.ToLower(tableName))
	}
	// Table partitioning
	if tableMetadata.TimePartitioning != nil && tableMetadata.TimePartitioning.Expiration != time.Duration(0) {
		var timePartitioning bigquery.TimePartitioning
		timePartitioning.Expiration = time.Duration(0)
		timePartitioning.Type = tableMetadata.TimePartitioning.Type

		tableMetadataToUpdate.TimePartitioning = &timePartitioning
		needToUpdate = true
	}
	// Update
	if needToUpdate {
		tableMetadata, err = table.Update(ctx, tableMetadataToUpdate, "")
		if err != nil {
			return nil, fmt.Errorf("ERROR when updating table metadata %v", err)
		}
		log.Printf("gbq table updated %s", tableName)
	}
	return table, nil
}
