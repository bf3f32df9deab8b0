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

	"github.com/dograga/compliance-checks/utilities/erm"
	"google.golang.org/api/compute/v1"
)

// ListInstances lists the instance names of one zone, paginating to exhaustion
func ListInstances(ctx context.Context, service *compute.Service, projectID string, zone string) ([]string, error) {
	var instanceNames []string
	err := service.Instances.List(projectID, zone).Pages(ctx, func(page *compute.InstanceList) error {
		for _, instance := range page.Items {
			instanceNames = append(instanceNames, instance.Name)
		}
		return nil
	})
	if err != nil {
		return nil, erm.NewCollectError(erm.Classify(err), fmt.Sprintf("%s/%s", projectID, zone), fmt.Errorf("instances.List: %v", err))
	}
	return instanceNames, nil
}
