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

package erm

import (
	"context"
	"log"
	"time"
)

// RetryTransient runs f up to attempts times, doubling the delay between tries.
// Only transient errors are retried, anything else comes back on first occurrence
func RetryTransient(ctx context.Context, attempts int, baseDelay time.Duration, f func() error) (err error) {
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		err = f()
		if err == nil {
			return nil
		}
		if Classify(err) != KindTransient {
			return err
		}
		if i == attempts-1 {
			break
		}
		log.Printf("Transient error, wait %v and retry %v", delay, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = delay * 2
	}
	return err
}
