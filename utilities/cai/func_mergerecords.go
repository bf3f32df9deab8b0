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

import "time"

// MergeRecords joins the resource listing with the policy index, keyed by asset
// name. One record per listed asset, in listing order, duplicates included. An
// asset that cannot be merged still yields a record, with the reason in Error
func MergeRecords(parentScope string, assets []ResourceAsset, policies map[string]IamPolicy, now time.Time) []MergedRecord {
	records := make([]MergedRecord, 0, len(assets))
	for _, asset := range assets {
		projectNumber, organizationID := ExtractAncestors(asset.Ancestors)
		resourceName, zone := ParseAssetName(asset.Name, asset.AssetType)
		record := MergedRecord{
			ParentScope:    parentScope,
			ProjectNumber:  projectNumber,
			OrganizationID: organizationID,
			ResourceName:   resourceName,
			AssetName:      asset.Name,
			AssetType:      asset.AssetType,
			Zone:           zone,
			AncestryPath:   BuildAncestryPath(asset.Ancestors),
			Timestamp:      now,
		}
		if asset.Name == "" {
			record.Error = "asset listed without a name, policy match impossible"
			records = append(records, record)
			continue
		}
		if policy, found := policies[asset.Name]; found {
			attachedPolicy := policy
			record.Policy = &attachedPolicy
		}
		records = append(records, record)
	}
	return records
}
