package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sbogaert/bomsweep/internal/platform"
	"github.com/sbogaert/bomsweep/pkg/encoding"
)

// NewEncodingCommand creates the encoding command
func NewEncodingCommand() *cobra.Command {
	var lookup bool

	cmd := &cobra.Command{
		Use:   "encoding FILE",
		Short: "Detect a file's encoding from its byte-order mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			enc, err := encoding.SniffFile(path)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %s\n", path, enc)

			if lookup {
				if url := formatInfoURL(path); url != "" {
					fmt.Printf("File type info: %s\n", url)
				} else {
					fmt.Println("File has no extension to look up.")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&lookup, "lookup", false, "print a file-type information URL for the file's extension")

	return cmd
}

// formatInfoURL builds a fileinfo.com lookup URL for the path's extension
func formatInfoURL(path string) string {
	ext := platform.Ext(path)
	if ext == "" {
		return ""
	}
	return "https://fileinfo.com/extension/" + strings.ToLower(strings.TrimPrefix(ext, "."))
}
