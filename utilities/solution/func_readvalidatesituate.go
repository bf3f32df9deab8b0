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

package solution

import (
	"fmt"

	"github.com/dograga/compliance-checks/utilities/ffo"
)

// ReadValidateSituate loads a settings file, situates it for an environment and validates the result
func ReadValidateSituate(path string, environmentName string) (*Settings, error) {
	var settings Settings
	if err := ffo.ReadUnmarshalYAML(path, &settings); err != nil {
		return nil, fmt.Errorf("ffo.ReadUnmarshalYAML: %v", err)
	}
	settings.Situate(environmentName)
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}
