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

package fan

import (
	"context"

	"github.com/dograga/compliance-checks/utilities/cai"
)

// Task is one unit of collection work, like fetching the IAM policy of one
// bucket or listing the instances of one zone
type Task interface {
	Do(ctx context.Context) ([]cai.MergedRecord, error)
	Describe() string
}
