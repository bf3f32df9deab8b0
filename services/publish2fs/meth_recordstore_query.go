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

package publish2fs

import (
	"context"
	"fmt"

	"github.com/dograga/compliance-checks/utilities/cai"
	"google.golang.org/api/iterator"
)

// Query lists the records of one collection matching the filter
func (store *RecordStore) Query(ctx context.Context, collectionID string, filter Filter) (records []cai.MergedRecord, err error) {
	query := store.firestoreClient.Collection(collectionID).Query
	if filter.ParentScope != "" {
		query = query.Where("parentScope", "==", filter.ParentScope)
	}
	if filter.ProjectNumber != "" {
		query = query.Where("projectNumber", "==", filter.ProjectNumber)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	documentIterator := query.Documents(ctx)
	defer documentIterator.Stop()
	for {
		documentSnap, err := documentIterator.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("documentIterator.Next: %v", err)
		}
		var record cai.MergedRecord
		if err = documentSnap.DataTo(&record); err != nil {
			return nil, fmt.Errorf("documentSnap.DataTo %s: %v", documentSnap.Ref.ID, err)
		}
		records = append(records, record)
	}
	return records, nil
}
