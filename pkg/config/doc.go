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

// Package config loads tool settings from environment variables.
//
// Variables:
//
//	IODP_SCHEMA_DIR       external catalog directory layered over the embedded data
//	IODP_HIGHLIGHT_COLOR  fill color of highlighted cells (default FF0000)
//	IODP_SHEET_NAME       worksheet name of exported workbooks (default Sheet1)
//	IODP_CELL_COMMENTS    annotate highlighted cells with violation reasons (default true)
//	LOG_LEVEL             debug, info, warn or error (default info)
//
// A .env file in the working directory is read by Load when present.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	cat, err := catalog.New(cfg.CatalogOptions()...)
//	...
//	annotated, err := highlight.Highlight(tbl, violations, cfg.HighlightOptions()...)
package config
