// Package main is the entry point for the padelmetrics CLI tool, which
// analyzes padel match tracking CSVs and computes player/ball statistics.
package main

import "github.com/Vibora-FCAI2025/padel-metrics/cmd"

func main() {
	cmd.Execute()
}
