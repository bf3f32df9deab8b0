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
	"time"

	"cloud.google.com/go/firestore"
	"github.com/dograga/compliance-checks/utilities/solution"
)

// RecordStore reads and writes merged inventory records in FireStore
type RecordStore struct {
	firestoreClient       *firestore.Client
	bucketsCollectionID   string
	instancesCollectionID string
	retriesNumber         time.Duration
}

// NewRecordStore creates a record store on the solution's collections
func NewRecordStore(firestoreClient *firestore.Client, settings *solution.Settings) *RecordStore {
	return &RecordStore{
		firestoreClient:       firestoreClient,
		bucketsCollectionID:   settings.Hosting.FireStore.CollectionIDs.Buckets,
		instancesCollectionID: settings.Hosting.FireStore.CollectionIDs.Instances,
		retriesNumber:         time.Duration(settings.Collection.RetriesNumber),
	}
}
