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
Package services structure

Each service package owns one concern and exposes it behind a constructor
returning a struct

  - collectinventory: collects resources and IAM policies, merges them and
    optionally persists. The orchestrator, it depends on the three others
  - monitorcompliance: pure analysis of merged records against the built in
    compliance rules, plus issue publishing
  - publish2fs: the FireStore record store, the queryable current state
  - stream2bq: the BigQuery inserter, the append only history

Constructors take a context and the solution settings, build the clients they
need and return structs whose methods take a context and return explicit
errors. The collectinventory service consumes the persistence services through
small unexported interfaces so tests swap them with in package fakes
*/
package services
