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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testReport struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

type testRows struct {
	rows [][]string
}

func (r testRows) TableHeader() []string {
	return []string{"ROW", "COLUMN", "KIND"}
}

func (r testRows) TableRows() [][]string {
	return r.rows
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testReport{
		{Name: "MAD", Count: 3},
		{Name: "GRA", Count: 0},
	}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testReport
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[0].Name != "MAD" || result[0].Count != 3 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	if err := writer.Serialize(context.Background(), testReport{Name: "SRM-SECT", Count: 7}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testReport
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result.Name != "SRM-SECT" || result.Count != 7 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable_Flattened(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type inner struct {
		Status string
	}
	type outer struct {
		Name    string
		Summary inner
		Counts  map[string]int
		Missing *int
	}

	data := outer{
		Name:    "MAD",
		Summary: inner{Status: "fail"},
		Counts:  map[string]int{"range": 2},
	}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "Summary.Status", "fail", "Counts.range", "Missing"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestWriter_SerializeTable_Tabular(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testRows{rows: [][]string{
		{"2", "Core", "type_coercion"},
		{"0", "Offset (cm)", "range"},
	}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ROW") || !strings.Contains(lines[0], "KIND") {
		t.Errorf("unexpected header line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "---") {
		t.Errorf("unexpected rule line %q", lines[1])
	}
	if !strings.Contains(lines[2], "type_coercion") || !strings.Contains(lines[3], "Offset (cm)") {
		t.Errorf("unexpected rows:\n%s", buf.String())
	}
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{"empty slice", []testReport{}},
		{"empty tabular", testRows{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), tt.data); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			if !strings.Contains(buf.String(), "<empty>") {
				t.Errorf("Expected '<empty>' in output, got: %s", buf.String())
			}
		})
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if err := writer.Serialize(context.Background(), testReport{Name: "XRD"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testReport
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal as JSON: %v", err)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xlsx"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.want {
				t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}

	if got := len(SupportedFormats()); got != 3 {
		t.Errorf("SupportedFormats() has %d entries, want 3", got)
	}
}

func TestWriter_Close(t *testing.T) {
	writer := NewStdoutWriter(FormatJSON)
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer should not error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Multiple Close calls should not error: %v", err)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		for _, path := range []string{"", "  ", "\t"} {
			writer := NewFileWriterOrStdout(FormatJSON, path)
			if writer.closer != nil {
				t.Errorf("expected stdout writer for %q", path)
			}
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		writer := NewFileWriterOrStdout(FormatJSON, path)

		if err := writer.Serialize(context.Background(), testReport{Name: "CARB", Count: 1}); err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("second Close failed: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read output file: %v", err)
		}
		var result testReport
		if err := json.Unmarshal(content, &result); err != nil {
			t.Fatalf("Failed to unmarshal file content: %v", err)
		}
		if result.Name != "CARB" {
			t.Errorf("Unexpected data in file: %+v", result)
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		writer := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/file.json")
		if writer.closer != nil {
			t.Error("expected fallback to stdout")
		}
	})
}
