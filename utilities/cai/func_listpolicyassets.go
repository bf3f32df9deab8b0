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

package cai

import (
	"context"
	"fmt"

	asset "cloud.google.com/go/asset/apiv1"
	"github.com/dograga/compliance-checks/utilities/erm"
	"google.golang.org/api/iterator"
	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
)

// ListPolicyAssets indexes IAM policies by asset name for the given asset types
// below a parent scope. Only assets carrying at least one binding are indexed,
// so a policy explicitly set to zero bindings looks the same as no policy
func ListPolicyAssets(ctx context.Context, client *asset.Client, parentScope string, assetTypes []string, pageSize int32) (map[string]IamPolicy, error) {
	if err := ValidateParentScope(parentScope); err != nil {
		return nil, err
	}
	request := &assetpb.ListAssetsRequest{
		Parent:      parentScope,
		AssetTypes:  assetTypes,
		ContentType: assetpb.ContentType_IAM_POLICY,
		PageSize:    pageSizeOrDefault(pageSize),
	}
	policies := make(map[string]IamPolicy)
	it := client.ListAssets(ctx, request)
	for {
		listedAsset, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, erm.NewCollectError(erm.Classify(err), parentScope, fmt.Errorf("assetClient.ListAssets: %v", err))
		}
		if listedAsset.IamPolicy == nil || len(listedAsset.IamPolicy.Bindings) == 0 {
			continue
		}
		policies[listedAsset.Name] = ConvertPolicy(listedAsset.IamPolicy)
	}
	return policies, nil
}
