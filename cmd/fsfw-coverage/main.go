// Command fsfw-coverage builds the unit tests with coverage and optionally
// opens the generated report.
package main

import "github.com/fsfw/fsfwhelper/cmd/fsfw-coverage/internal"

func main() {
	internal.Execute()
}
