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

	"github.com/dograga/compliance-checks/utilities/grm"
	"google.golang.org/api/cloudresourcemanager/v1"
)

// projectAPI resolves project numbers through the resource manager service
type projectAPI struct {
	service *cloudresourcemanager.Service
}

func (api *projectAPI) GetProjectNumber(ctx context.Context, projectID string) (string, error) {
	return grm.GetProjectNumber(ctx, api.service, projectID)
}
