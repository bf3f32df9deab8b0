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
	"cloud.google.com/go/iam"
	"github.com/dograga/compliance-checks/utilities/cai"
	iampb "google.golang.org/genproto/googleapis/iam/v1"
)

// ConvertBucketPolicy normalizes a version 3 storage policy to the neutral IamPolicy type
func ConvertBucketPolicy(policy *iam.Policy3) cai.IamPolicy {
	return cai.ConvertPolicy(&iampb.Policy{
		Version:  3,
		Bindings: policy.Bindings,
	})
}
