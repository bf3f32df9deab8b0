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

	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/gce"
	"google.golang.org/api/compute/v1"
)

// computeAPI walks zones and instances through the compute service
type computeAPI struct {
	service *compute.Service
}

func (api *computeAPI) ListZones(ctx context.Context, projectID string) ([]string, error) {
	return gce.ListZones(ctx, api.service, projectID)
}

func (api *computeAPI) ListInstances(ctx context.Context, projectID string, zone string) ([]string, error) {
	return gce.ListInstances(ctx, api.service, projectID, zone)
}

func (api *computeAPI) GetInstancePolicy(ctx context.Context, projectID string, zone string, instanceName string) (cai.IamPolicy, error) {
	return gce.GetInstancePolicy(ctx, api.service, projectID, zone, instanceName)
}
