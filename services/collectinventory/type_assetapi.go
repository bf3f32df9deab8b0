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

	asset "cloud.google.com/go/asset/apiv1"
	"github.com/dograga/compliance-checks/utilities/cai"
)

// assetAPI lists assets through the Cloud Asset Inventory client, the page
// size comes from the collection settings
type assetAPI struct {
	client   *asset.Client
	pageSize int32
}

func (api *assetAPI) ListResourceAssets(ctx context.Context, parentScope string, assetTypes []string) ([]cai.ResourceAsset, error) {
	return cai.ListResourceAssets(ctx, api.client, parentScope, assetTypes, api.pageSize)
}

func (api *assetAPI) ListPolicyAssets(ctx context.Context, parentScope string, assetTypes []string) (map[string]cai.IamPolicy, error) {
	return cai.ListPolicyAssets(ctx, api.client, parentScope, assetTypes, api.pageSize)
}
