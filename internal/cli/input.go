package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const stdinSource = "stdin"

// readDocument reads the document named by args[0], or stdin when no argument
// or "-" is given. It returns the document and a label for reports.
func readDocument(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), stdinSource, nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), path, nil
}
