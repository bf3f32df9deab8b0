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

package collectinventory

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/gcs"
)

// bucketAPI fetches bucket policies through the storage client
type bucketAPI struct {
	client *storage.Client
}

func (api *bucketAPI) GetBucketPolicy(ctx context.Context, bucketName string) (cai.IamPolicy, error) {
	return gcs.GetBucketPolicy(ctx, api.client, bucketName)
}
