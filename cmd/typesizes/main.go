// Command typesizes prints the byte size of the fundamental C types as the
// build toolchain sees them.
package main

import (
	"os"

	"github.com/idilsaglam/scalars/internal/typesize"
)

func main() {
	_ = typesize.Write(os.Stdout)
}
