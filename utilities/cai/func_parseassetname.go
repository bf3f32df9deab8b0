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

import "strings"

// ParseAssetName extracts the short resource name and, for zonal asset types,
// the zone from a full asset name like
// //compute.googleapis.com/projects/p/zones/z/instances/i
// A name with fewer segments than expected yields "unknown", never an error
func ParseAssetName(name string, assetType string) (resourceName string, zone string) {
	resourceName = Unknown
	zone = Unknown
	parts := strings.Split(name, "/")
	switch assetType {
	case AssetTypeInstance:
		if len(parts) < 6 {
			return Unknown, Unknown
		}
		resourceName = parts[len(parts)-1]
		for idx, part := range parts {
			if part == "zones" && idx+1 < len(parts) {
				zone = parts[idx+1]
				break
			}
		}
	default:
		if len(parts) < 2 {
			return Unknown, Unknown
		}
		resourceName = parts[len(parts)-1]
	}
	return resourceName, zone
}
