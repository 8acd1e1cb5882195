// Copyright (C) MinIO, Inc. 2020 — derivative work.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corejson provides a pair of allocation-disciplined JSON
// primitives for hot-path serialization and ingestion: a forward-only
// tokenizing Scanner that walks an in-memory payload without copying, and
// a fixed-capacity Emitter that builds a JSON document into a pre-sized
// buffer, self-truncating into a well-formed marker rather than growing
// past its budget.
//
// Both types are single-threaded and reusable: Reset and Clear recycle
// the retained allocations across documents so that steady-state use
// performs no heap allocation beyond the initial sizing.
package corejson
