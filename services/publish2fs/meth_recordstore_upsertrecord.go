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

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/gfs"
)

// UpsertRecord sets the FireStore document for a record, overwriting any previous collection of the same resource
func (store *RecordStore) UpsertRecord(ctx context.Context, record cai.MergedRecord) error {
	documentPath, err := store.documentPath(record)
	if err != nil {
		return err
	}
	return gfs.UpsertDoc(ctx, store.firestoreClient, documentPath, record, store.retriesNumber)
}
