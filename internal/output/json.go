package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dotcommander/assay/internal/engine"
)

// JSONFormatter renders a report as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONEnvelope wraps the report with tool metadata. The envelope carries
// no timestamp: the report must stay byte-identical for identical inputs,
// and audit stamping belongs to whoever persists it.
type JSONEnvelope struct {
	Header JSONHeader     `json:"header"`
	Report *engine.Report `json:"report"`
}

// JSONHeader contains report metadata.
type JSONHeader struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`
}

// Format renders the report as JSON to the output file or stdout.
func (f *JSONFormatter) Format(report *engine.Report) error {
	envelope := JSONEnvelope{
		Header: JSONHeader{
			Tool:    "assay",
			Version: "1.0.0",
		},
		Report: report,
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(envelope, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(envelope)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Println(string(jsonBytes))
	return nil
}
