// Command neon lexes, parses and evaluates arithmetic expressions.
package main

import "os"

func main() {
	os.Exit(execute(newGlobalState(), os.Args[1:]))
}
