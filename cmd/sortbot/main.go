package main

import (
	"os"

	"github.com/joshyorko/sortbot/cmd"
	"github.com/joshyorko/sortbot/common"
)

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			common.CloseLogFile()
			os.Exit(exit.Code)
		}
		common.WaitLogs()
		common.CloseLogFile()
		panic(status)
	}
	common.WaitLogs()
	common.CloseLogFile()
}

func main() {
	defer ExitProtection()
	cmd.Execute()
}
