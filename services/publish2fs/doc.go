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

// Package publish2fs persists merged inventory records as FireStore documents
//
// Buckets and instances land in distinct collections. The document ID is the
// bucket name for buckets, and projectNumber-zone-instanceName for instances,
// so recollecting the same scope overwrites documents instead of duplicating them
package publish2fs
