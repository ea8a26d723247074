// Command switchenum is a linter that checks switch statements over enums.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/switchenum"
)

func main() {
	singlechecker.Main(switchenum.Analyzer)
}
