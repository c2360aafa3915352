// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coding

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sourcenet/pkg/types"
)

// ReadRequest decodes a coding request from YAML (JSON is accepted as a
// YAML subset).
func ReadRequest(r io.Reader) (types.CodingRequest, error) {
	var req types.CodingRequest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&req); err != nil {
		return types.CodingRequest{}, fmt.Errorf("parsing coding request: %w", err)
	}
	return req, nil
}

// WriteReport encodes report to w as yaml or json.
func WriteReport(w io.Writer, report types.CodingReport, format string) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown report format %q: use yaml or json", format)
}
