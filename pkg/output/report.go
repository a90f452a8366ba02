package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// WriteFormatsReport writes the extension inventory to a file, or to w when
// no path is given. Format can be "human" or "json".
func WriteFormatsReport(root string, extensions []string, includeExcluded bool, path string, format string, w io.Writer) error {
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer file.Close()
		w = file
	}

	switch format {
	case "json":
		return writeFormatsJSON(root, extensions, includeExcluded, w)
	default: // "human"
		return writeFormatsHuman(root, extensions, includeExcluded, w)
	}
}

// writeFormatsHuman writes the inventory in human-readable format
func writeFormatsHuman(root string, extensions []string, includeExcluded bool, w io.Writer) error {
	if includeExcluded {
		fmt.Fprintf(w, "Extensions present under %s:\n", root)
	} else {
		fmt.Fprintf(w, "Unrecognized extensions under %s (not in exclusion list):\n", root)
	}

	if len(extensions) == 0 {
		fmt.Fprintf(w, "  (none)\n")
		return nil
	}

	for _, ext := range extensions {
		if ext == "" {
			fmt.Fprintf(w, "  (no extension)\n")
			continue
		}
		fmt.Fprintf(w, "  %s\n", ext)
	}
	return nil
}

// writeFormatsJSON writes the inventory in JSON format
func writeFormatsJSON(root string, extensions []string, includeExcluded bool, w io.Writer) error {
	doc := struct {
		Generated       string   `json:"generated"`
		RootPath        string   `json:"root_path"`
		IncludeExcluded bool     `json:"include_excluded"`
		TotalCount      int      `json:"total_count"`
		Extensions      []string `json:"extensions"`
	}{
		Generated:       time.Now().Format(time.RFC3339),
		RootPath:        root,
		IncludeExcluded: includeExcluded,
		TotalCount:      len(extensions),
		Extensions:      extensions,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
