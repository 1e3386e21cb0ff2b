//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "life-wasm only runs inside a browser host.")
	fmt.Fprintln(os.Stderr, "Build it with `GOOS=js GOARCH=wasm go build -o life.wasm ./cmd/life-wasm`.")
	os.Exit(2)
}
