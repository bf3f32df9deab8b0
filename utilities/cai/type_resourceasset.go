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

// Asset types the collectors know how to parse
const (
	AssetTypeBucket   = "storage.googleapis.com/Bucket"
	AssetTypeInstance = "compute.googleapis.com/Instance"
)

// Unknown is the fallback value for any field that cannot be derived from an asset
const Unknown = "unknown"

// ResourceAsset is one asset as listed by Cloud Asset Inventory, content type RESOURCE
type ResourceAsset struct {
	Name      string   `json:"name"`
	AssetType string   `json:"assetType"`
	Ancestors []string `json:"ancestors"`
}
