package main

import "github.com/devicelab-dev/pw-trace-report/pkg/cli"

func main() {
	cli.Execute()
}
