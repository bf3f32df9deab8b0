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

	"github.com/dograga/compliance-checks/utilities/gfs"
	"google.golang.org/api/iterator"
)

// DeleteByScope removes all documents collected for a parent scope from both collections
// It returns the number of documents deleted, also when it errors half way
func (store *RecordStore) DeleteByScope(ctx context.Context, parentScope string) (deleted int, err error) {
	for _, collectionID := range []string{store.bucketsCollectionID, store.instancesCollectionID} {
		documentIterator := store.firestoreClient.Collection(collectionID).Where("parentScope", "==", parentScope).Documents(ctx)
		for {
			documentSnap, iterErr := documentIterator.Next()
			if iterErr == iterator.Done {
				break
			}
			if iterErr != nil {
				documentIterator.Stop()
				return deleted, fmt.Errorf("documentIterator.Next: %v", iterErr)
			}
			// same retry discipline as UpsertDoc, one transient hiccup must
			// not abort the scope deletion half way
			iterErr = gfs.DeleteDoc(ctx, store.firestoreClient, collectionID+"/"+documentSnap.Ref.ID, store.retriesNumber)
			if iterErr != nil {
				documentIterator.Stop()
				return deleted, fmt.Errorf("gfs.DeleteDoc %s/%s: %v", collectionID, documentSnap.Ref.ID, iterErr)
			}
			deleted++
		}
		documentIterator.Stop()
	}
	return deleted, nil
}
