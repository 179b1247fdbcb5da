package main

import (
	"github.com/fatih/color"
)

func printSuccess(format string, a ...interface{}) {
	color.Green("✅ "+format, a...)
}

func printError(format string, a ...interface{}) {
	color.Red("⛔ "+format, a...)
}

func printInfo(format string, a ...interface{}) {
	color.Cyan("ℹ️  "+format, a...)
}

func printWarning(format string, a ...interface{}) {
	color.Yellow("⚠️  "+format, a...)
}
