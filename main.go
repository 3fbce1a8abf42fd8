package main

import (
	"errors"
	"os"

	"t0ast.cc/brave-alfred/cli"
	uerror "t0ast.cc/brave-alfred/util/error"
	ulog "t0ast.cc/brave-alfred/util/log"
)

func main() {
	err := cli.Run(os.Args, os.Stdout, os.Stderr)
	if err != nil {
		ulog.Errorf("%s", err.Error())
		var withStackTrace uerror.ErrorWithStackTrace
		if errors.As(err, &withStackTrace) {
			ulog.Debugf("%s", withStackTrace.Verbose())
		}
		if exitCode, hasExitCode := uerror.GetExitCode(err); hasExitCode {
			os.Exit(int(exitCode))
		}
		os.Exit(int(uerror.ExitCodeGeneric))
	}
}
