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

package monitorcompliance

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cloud.google.com/go/pubsub"
	"github.com/dograga/compliance-checks/utilities/gps"
)

const logEventEveryXPubSubMsg uint64 = 100

// PublishIssues publishes each issue as one pubsub message and waits for all publish results
func PublishIssues(ctx context.Context, topic *pubsub.Topic, issues []Issue) error {
	var waitgroup sync.WaitGroup
	var pubSubErrNumber uint64
	var pubSubMsgNumber uint64
	for _, issue := range issues {
		issueJSON, err := json.Marshal(issue)
		if err != nil {
			return fmt.Errorf("json.Marshal: %v", err)
		}
		publishRequest := pubsub.Message{Data: issueJSON}
		publishResult := topic.Publish(ctx, &publishRequest)
		waitgroup.Add(1)
		go gps.GetPublishCallResult(ctx, publishResult, &waitgroup, issue.AssetName+"/"+issue.Category, &pubSubErrNumber, &pubSubMsgNumber, logEventEveryXPubSubMsg)
	}
	waitgroup.Wait()
	if pubSubErrNumber > 0 {
		return fmt.Errorf("%d issues of %d failed to publish", pubSubErrNumber, len(issues))
	}
	return nil
}
