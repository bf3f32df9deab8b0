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

// Package monitorcompliance checks merged IAM records against built in compliance rules
//
// Three rule families are applied to every binding member:
//   - public access: allUsers and allAuthenticatedUsers grants
//   - cross project service accounts: user managed service accounts homed in another project
//   - external members: users, groups and domains outside the trusted Google domains
//
// Analysis is pure, it takes records and returns issues with a summary, no
// client is needed. Publishing the issues to pubsub is a separate call
package monitorcompliance
