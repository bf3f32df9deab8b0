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

package collectinventory

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/pubsub"
	"github.com/dograga/compliance-checks/utilities/cai"
	"github.com/dograga/compliance-checks/utilities/gps"
)

// topicPublisher publishes collection summaries on the summary topic
type topicPublisher struct {
	topic *pubsub.Topic
}

func (publisher *topicPublisher) PublishSummary(ctx context.Context, result *cai.CollectionResult) error {
	messageID, err := gps.PublishJSON(ctx, publisher.topic, result)
	if err != nil {
		return fmt.Errorf("gps.PublishJSON: %v", err)
	}
	log.Printf("published collection summary %s message id %s", result.ScopeID, messageID)
	return nil
}
