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

package gfs

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
)

// UpsertDoc set a document with retries. Set creates or fully replaces, so the
// last write for a given path wins
func UpsertDoc(ctx context.Context,
	firestoreClient *firestore.Client,
	documentPath string,
	data interface{},
	retriesNumber time.Duration) (err error) {
	return redoOnTransient("firestoreClient.Doc(documentPath).Set", documentPath, retriesNumber, func() error {
		_, setErr := firestoreClient.Doc(documentPath).Set(ctx, data)
		return setErr
	})
}
