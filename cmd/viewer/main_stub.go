//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The terrain viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/viewer` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Use ./cmd/terragen to render terrain to an image file without a window.")
	os.Exit(2)
}
