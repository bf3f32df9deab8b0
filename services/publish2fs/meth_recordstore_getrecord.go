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
	"github.com/dograga/compliance-checks/utilities/gfs"
)

// GetRecord fetches the stored document of a record's resource, found is false
// when the resource was never collected
func (store *RecordStore) GetRecord(ctx context.Context, record cai.MergedRecord) (stored *cai.MergedRecord, found bool, err error) {
	documentPath, err := store.documentPath(record)
	if err != nil {
		return nil, false, err
	}
	documentSnap, found := gfs.GetDoc(ctx, store.firestoreClient, documentPath, store.retriesNumber)
	if !found {
		return nil, false, nil
	}
	var storedRecord cai.MergedRecord
	if err = documentSnap.DataTo(&storedRecord); err != nil {
		return nil, false, fmt.Errorf("documentSnap.DataTo %s: %v", documentPath, err)
	}
	return &storedRecord, true, nil
}
