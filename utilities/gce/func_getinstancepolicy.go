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

package gce

import (
	"context"
	"fmt"

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/erm"
	"google.golang.org/api/compute/v1"
)

// GetInstancePolicy fetches the IAM policy of one instance
func GetInstancePolicy(ctx context.Context, service *compute.Service, projectID string, zone string, instanceName string) (cai.IamPolicy, error) {
	policy, err := service.Instances.GetIamPolicy(projectID, zone, instanceName).Context(ctx).Do()
	if err != nil {
		resource := fmt.Sprintf("%s/%s/%s", projectID, zone, instanceName)
		return cai.IamPolicy{}, erm.NewCollectError(erm.Classify(err), resource, fmt.Errorf("instances.GetIamPolicy: %v", err))
	}
	return ConvertInstancePolicy(policy), nil
}
