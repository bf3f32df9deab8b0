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

package gfs

import (
	"fmt"
	"log"
	"time"

	"github.com/dograga/compliance-checks/utilities/glo"
)

// redoOnTransient runs a firestore document operation up to retriesNumber
// times, waiting i*100ms between iterations
func redoOnTransient(operation string, documentPath string, retriesNumber time.Duration, f func() error) (err error) {
	var i time.Duration
	for i = 0; i < retriesNumber; i++ {
		err = f()
		if err == nil {
			return nil
		}
		log.Println(glo.Entry{
			Severity:    "WARNING",
			Message:     "redo_on_transient",
			Description: fmt.Sprintf("iteration %d %s %s %v", i, operation, documentPath, err),
		})
		time.Sleep(i * 100 * time.Millisecond)
	}
	return err
}
