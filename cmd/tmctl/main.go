package main

import "github.com/timelyhq/timely/cmd/tmctl/arg"

func main() {
	arg.Execute()
}
