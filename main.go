// Package main is the entry point for the cbbmetrics CLI tool, which ingests
// college basketball feeds and computes player/team statistics.
package main

import "github.com/hoopsight/cbbmetrics/cmd"

func main() {
	cmd.Execute()
}
