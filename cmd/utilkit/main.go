// Command utilkit exposes the utilkit helpers on the console.
//
//	utilkit [--config file] format [--trim] [--lowercase] <text...>
//	utilkit [--config file] parse [--strict] [<json>]
//	utilkit [--config file] log [--prefix p] [--error] <message...>
//	utilkit version
//
// format and parse read standard input when no argument is given.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
