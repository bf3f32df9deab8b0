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

package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/erm"
)

// GetBucketPolicy fetches the IAM policy of one bucket, requesting policy
// version 3 so conditional bindings come back intact
func GetBucketPolicy(ctx context.Context, client *storage.Client, bucketName string) (cai.IamPolicy, error) {
	policy, err := client.Bucket(bucketName).IAM().V3().Policy(ctx)
	if err != nil {
		return cai.IamPolicy{}, erm.NewCollectError(erm.Classify(err), bucketName, fmt.Errorf("bucket.IAM.V3.Policy: %v", err))
	}
	return ConvertBucketPolicy(policy), nil
}
