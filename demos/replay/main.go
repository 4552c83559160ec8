// replay plays back a test script written by the puzzle example's -record
// flag, or written by hand, and exits when it is done. The exit status is 1
// when any expect_level step failed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/isobox"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: replay [-shots dir] script.json[.zst]\n")
		flag.PrintDefaults()
	}
	shots := flag.String("shots", "", "directory for the script's screenshots (default ./screenshots)")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	runner, err := isobox.ReadTestScript(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if err := isobox.Run(isobox.RunConfig{
		Title:         "isobox replay",
		Script:        runner,
		ScreenshotDir: *shots,
	}); err != nil {
		log.Fatal(err)
	}
	if len(runner.Failures()) > 0 {
		os.Exit(1)
	}
}
