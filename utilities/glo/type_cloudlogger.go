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

package glo

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/logging"
)

// CloudLogger sends entries to Cloud Logging instead of stdout
type CloudLogger struct {
	client *logging.Client
	logger *logging.Logger
}

// NewCloudLogger creates a Cloud Logging client for a given log name
func NewCloudLogger(ctx context.Context, projectID, logName string) (*CloudLogger, error) {
	client, err := logging.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("logging.NewClient: %v", err)
	}
	return &CloudLogger{
		client: client,
		logger: client.Logger(logName),
	}, nil
}

// Log sends one structured entry, severity mapped from the entry
func (cl *CloudLogger) Log(e Entry) {
	severity := logging.ParseSeverity(e.Severity)
	if e.Severity == "" {
		severity = logging.Info
	}
	cl.logger.Log(logging.Entry{
		Severity: severity,
		Payload:  e,
	})
}

// Close flushes pending entries and releases the client
func (cl *CloudLogger) Close() {
	if err := cl.client.Close(); err != nil {
		log.Printf("ERROR - logging client.Close: %v", err)
	}
}
