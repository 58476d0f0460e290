// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package header provides the common header of catalog files and tool output.
//
// A Header follows the Kubernetes resource layout of kind, apiVersion and a
// string metadata map. Catalog data files embed it inline:
//
//	apiVersion: lore.iodp.tamu.edu/v1alpha1
//	kind: ReportCatalog
//	metadata:
//	  name: physprops
//	  description: Physical properties reports
//
// Validation reports are stamped with Init, which records a UTC RFC3339
// timestamp, a random run id and the tool version:
//
//	var h header.Header
//	h.Init(header.KindValidationReport, defaults.APIVersion, "v0.3.0")
//
// Consumers should check APIVersion and Kind before trusting the payload.
package header
