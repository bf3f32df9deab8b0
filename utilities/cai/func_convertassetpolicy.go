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
	iampb "google.golang.org/genproto/googleapis/iam/v1"
)

// ConvertPolicy normalizes a protobuf IAM policy to the neutral IamPolicy type
func ConvertPolicy(policy *iampb.Policy) IamPolicy {
	converted := IamPolicy{
		Version: int(policy.Version),
		Etag:    string(policy.Etag),
	}
	for _, binding := range policy.Bindings {
		convertedBinding := IamBinding{
			Role:    binding.Role,
			Members: append([]string(nil), binding.Members...),
		}
		if binding.Condition != nil {
			convertedBinding.Condition = &BindingCondition{
				Title:       binding.Condition.Title,
				Description: binding.Condition.Description,
				Expression:  binding.Condition.Expression,
			}
		}
		converted.Bindings = append(converted.Bindings, convertedBinding)
	}
	return converted
}
