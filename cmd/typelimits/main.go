// Command typelimits prints a table of Go's numeric type limits.
package main

import (
	"fmt"
	"os"

	"localsketch/internal/typeinfo"
)

func main() {
	fmt.Println("Printing info about types:")
	fmt.Println()
	if err := typeinfo.Render(os.Stdout, typeinfo.All()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
