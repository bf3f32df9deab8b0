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
	"fmt"

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/erm"
)

// documentPath builds the collection/documentID path for a record
// Bucket names are globally unique, instance names are only unique within a
// project and zone, hence the composite instance document ID
func (store *RecordStore) documentPath(record cai.MergedRecord) (documentPath string, err error) {
	switch record.AssetType {
	case cai.AssetTypeBucket:
		return store.bucketsCollectionID + "/" + record.ResourceName, nil
	case cai.AssetTypeInstance:
		return fmt.Sprintf("%s/%s-%s-%s", store.instancesCollectionID, record.ProjectNumber, record.Zone, record.ResourceName), nil
	default:
		return "", erm.NewCollectError(erm.KindMalformedInput, record.AssetName, fmt.Errorf("no collection for assetType %s", record.AssetType))
	}
}
