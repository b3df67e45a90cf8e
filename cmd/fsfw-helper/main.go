// Command fsfw-helper creates, builds and opens the test or documentation
// build of the flight software framework.
package main

import "github.com/fsfw/fsfwhelper/cmd/fsfw-helper/internal"

func main() {
	internal.Execute()
}
