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

package aut

import (
	"context"
	"fmt"

	"github.com/dograga/compliance-checks/utilities/erm"
	"golang.org/x/oauth2/google"
)

// CloudPlatformScope covers all the APIs the collectors call
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// GetCredentials resolves application default credentials.
// A missing or broken credential chain is an auth error, not a transient one
func GetCredentials(ctx context.Context) (*google.Credentials, error) {
	credentials, err := google.FindDefaultCredentials(ctx, CloudPlatformScope)
	if err != nil {
		return nil, erm.NewCollectError(erm.KindAuth, "", fmt.Errorf("google.FindDefaultCredentials: %v", err))
	}
	return credentials, nil
}
