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

// BindingCondition is the condition attached to a binding, flattened from the CEL expression
type BindingCondition struct {
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	Expression  string `json:"expression" firestore:"expression"`
}

// IamBinding grants one role to a list of members
type IamBinding struct {
	Role      string            `json:"role" firestore:"role"`
	Members   []string          `json:"members" firestore:"members"`
	Condition *BindingCondition `json:"condition,omitempty" firestore:"condition,omitempty"`
}

// IamPolicy is the policy set on one resource, normalized from the API specific policy types
type IamPolicy struct {
	Version  int          `json:"version" firestore:"version"`
	Bindings []IamBinding `json:"bindings" firestore:"bindings"`
	Etag     string       `json:"etag,omitempty" firestore:"etag,omitempty"`
}
