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

/*
Package compliancechecks collects IAM policies on Google Cloud resources and checks them against simple access rules

## What

Enumerate Cloud Storage buckets and Compute Engine VM instances in a project, a folder or
an organization, attach the IAM policy found on each resource, and flag risky bindings:

1. Public access: a binding granting a role to `allUsers` or `allAuthenticatedUsers`
2. Cross project access: a binding granting a role to a service account from another
   project, or to an identity on an external domain

## How

 - Cloud Asset Inventory lists candidate resources and, where supported, their IAM
   policies in one pass (services/collectinventory)
 - Asset types without combined listing support get one IAM policy fetch per resource,
   fanned out concurrently with partial failure tolerance (utilities/fan, gce, gcs)
 - Merged records are keyed by asset name, optionally persisted to FireStore
   (services/publish2fs), streamed to BigQuery (services/stream2bq), and analyzed
   (services/monitorcompliance)

## Why

A resource the team cannot list is a resource the team cannot audit: partial data plus
an explicit error list always beats an all or nothing failure.
*/
package compliancechecks
