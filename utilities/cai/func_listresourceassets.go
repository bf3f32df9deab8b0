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

const defaultAssetPageSize int32 = 1000

// pageSizeOrDefault keeps callers free to pass 0 and get the standard page size
func pageSizeOrDefault(pageSize int32) int32 {
	if pageSize < 1 {
		return defaultAssetPageSize
	}
	return pageSize
}

// ListResourceAssets lists the resource metadata of the given asset types below
// a parent scope, paginating to exhaustion
func ListResourceAssets(ctx context.Context, client *asset.Client, parentScope string, assetTypes []string, pageSize int32) ([]ResourceAsset, error) {
	if err := ValidateParentScope(parentScope); err != nil {
		return nil, err
	}
	request := &assetpb.ListAssetsRequest{
		Parent:      parentScope,
		AssetTypes:  assetTypes,
		ContentType: assetpb.ContentType_RESOURCE,
		PageSize:    pageSizeOrDefault(pageSize),
	}
	var resourceAssets []ResourceAsset
	it := client.ListAssets(ctx, request)
	for {
		listedAsset, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, erm.NewCollectError(erm.Classify(err), parentScope, fmt.Errorf("assetClient.ListAssets: %v", err))
		}
		resourceAssets = append(resourceAssets, ResourceAsset{
			Name:      listedAsset.Name,
			AssetType: listedAsset.AssetType,
			Ancestors: append([]string(nil), listedAsset.Ancestors...),
		})
	}
	return resourceAssets, nil
}
