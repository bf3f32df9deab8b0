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

// CollectionResult is what a collection run returns: the records that could be
// built plus one error string per resource that could not
type CollectionResult struct {
	ScopeID string         `json:"scope_id"`
	Records []MergedRecord `json:"records"`
	Errors  []string       `json:"errors"`
	Total   int            `json:"total"`
}
