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

// Package collectinventory collects IAM policies at scale and merges them with resource inventory
//
// Three collection paths are available
//   - CollectScope lists resources and IAM policies through Cloud Asset
//     Inventory for a whole scope, projects/x folders/x or organizations/x,
//     and merges both listings by asset name
//   - CollectProjectBuckets lists one project's buckets then fetches each
//     bucket policy through the storage API, concurrently
//   - CollectProjectInstances walks one project's zones and instances through
//     the compute API then fetches each instance policy, concurrently
//
// A failed policy fetch never fails the collection, the record is kept with
// its error field set and one error string lands in the result. Only a bad
// scope, missing credentials or a top level permission denial are fatal.
// Persistence is optional per call, FireStore documents, BigQuery rows and
// one pubsub summary message
package collectinventory
