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
	"time"

	asset "cloud.google.com/go/asset/apiv1"
	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	pubsubapi "cloud.google.com/go/pubsub/apiv1"
	"cloud.google.com/go/storage"
	"github.com/dograga/compliance-checks/services/publish2fs"
	"github.com/dograga/compliance-checks/services/stream2bq"
	"github.com/dograga/compliance-checks/utilities/aut"
	"github.com/dograga/compliance-checks/utilities/glo"
	"github.com/dograga/compliance-checks/utilities/gps"
	"github.com/dograga/compliance-checks/utilities/solution"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/compute/v1"
)

// NewCollector builds every client from application default credentials and
// wires the persistence targets, the topic, the dataset and the records table
// are created when missing
func NewCollector(ctx context.Context, settings *solution.Settings) (*Collector, error) {
	clientOption, err := aut.GetClientOption(ctx)
	if err != nil {
		return nil, err
	}

	assetClient, err := asset.NewClient(ctx, clientOption)
	if err != nil {
		return nil, fmt.Errorf("asset.NewClient: %v", err)
	}
	storageClient, err := storage.NewClient(ctx, clientOption)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %v", err)
	}
	computeService, err := compute.NewService(ctx, clientOption)
	if err != nil {
		return nil, fmt.Errorf("compute.NewService: %v", err)
	}
	cloudresourcemanagerService, err := cloudresourcemanager.NewService(ctx, clientOption)
	if err != nil {
		return nil, fmt.Errorf("cloudresourcemanager.NewService: %v", err)
	}
	firestoreClient, err := firestore.NewClient(ctx, settings.Hosting.ProjectID, clientOption)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient: %v", err)
	}
	bigQueryClient, err := bigquery.NewClient(ctx, settings.Hosting.ProjectID, clientOption)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %v", err)
	}
	pubSubClient, err := pubsub.NewClient(ctx, settings.Hosting.ProjectID, clientOption)
	if err != nil {
		return nil, fmt.Errorf("pubsub.NewClient: %v", err)
	}
	pubSubPublisherClient, err := pubsubapi.NewPublisherClient(ctx, clientOption)
	if err != nil {
		return nil, fmt.Errorf("pubsubapi.NewPublisherClient: %v", err)
	}

	topicName := settings.Hosting.Pubsub.TopicNames.CollectionSummary
	var topicList []string
	if err = gps.CreateTopic(ctx, pubSubPublisherClient, &topicList, topicName, settings.Hosting.ProjectID); err != nil {
		return nil, fmt.Errorf("gps.CreateTopic %s: %v", topicName, err)
	}

	inserter, err := stream2bq.NewInserter(ctx, bigQueryClient, settings)
	if err != nil {
		return nil, fmt.Errorf("stream2bq.NewInserter: %v", err)
	}

	cloudLogger, err := glo.NewCloudLogger(ctx, settings.Hosting.ProjectID, microserviceName)
	if err != nil {
		// collections still run with local logs only
		log.Printf("ERROR - glo.NewCloudLogger: %v", err)
		cloudLogger = nil
	}

	return &Collector{
		assets:         &assetAPI{client: assetClient, pageSize: int32(settings.Collection.PageSize)},
		buckets:        &bucketAPI{client: storageClient},
		instances:      &computeAPI{service: computeService},
		projectNumbers: &projectAPI{service: cloudresourcemanagerService},
		store:          publish2fs.NewRecordStore(firestoreClient, settings),
		inserter:       inserter,
		publisher:      &topicPublisher{topic: pubSubClient.Topic(topicName)},
		cloudLogger:    cloudLogger,
		assetTypes:     settings.Collection.AssetTypes,
		concurrency:    int(settings.Collection.Concurrency),
		retriesNumber:  int(settings.Collection.RetriesNumber),
		retryBaseDelay: 100 * time.Millisecond,
	}, nil
}
