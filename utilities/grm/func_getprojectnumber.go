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

package grm

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dograga/compliance-checks/utilities/erm"
	"google.golang.org/api/cloudresourcemanager/v1"
)

// GetProjectNumber resolves a project ID to its project number.
// Asset ancestors carry numbers while the compute and storage APIs take IDs,
// the FireStore record keys need the number
func GetProjectNumber(ctx context.Context, service *cloudresourcemanager.Service, projectID string) (string, error) {
	project, err := service.Projects.Get(projectID).Context(ctx).Do()
	if err != nil {
		return "", erm.NewCollectError(erm.Classify(err), projectID, fmt.Errorf("projects.Get: %v", err))
	}
	return strconv.FormatInt(project.ProjectNumber, 10), nil
}
