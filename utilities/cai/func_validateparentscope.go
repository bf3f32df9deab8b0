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
	"fmt"
	"strings"

	"github.com/dograga/compliance-checks/utilities/erm"
)

var parentScopePrefixes = []string{"projects/", "folders/", "organizations/"}

// ValidateParentScope rejects anything the inventory API would refuse as a parent
func ValidateParentScope(parentScope string) error {
	for _, prefix := range parentScopePrefixes {
		if strings.HasPrefix(parentScope, prefix) && len(parentScope) > len(prefix) {
			return nil
		}
	}
	return erm.NewCollectError(erm.KindMalformedInput, parentScope,
		fmt.Errorf("parent scope must look like projects/<id>, folders/<id> or organizations/<id>"))
}
