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

/*
Package cai lists Cloud Asset Inventory assets and merges resource metadata with IAM policies

Listing runs twice per scope, once with content type RESOURCE and once with
IAM_POLICY, as the inventory API returns one content type at a time. The merge
keys policies by asset name and emits one record per listed resource, in
listing order, whether or not a policy was found.
*/
package cai
