package main

import (
	"fmt"
)

func main() {
	printWelcome()
	Execute()
}

func printWelcome() {
	fmt.Println("\033[33m")
	fmt.Println("  __  __ ____   ___  _   _  ____  ___  ")
	fmt.Println(" |  \\/  | __ ) / _ \\| \\ | |/ ___|/ _ \\ ")
	fmt.Println(" | |\\/| |  _ \\| | | |  \\| | |  _| | | |")
	fmt.Println(" | |  | | |_) | |_| | |\\  | |_| | |_| |")
	fmt.Println(" |_|  |_|____/ \\___/|_| \\_|\\____|\\___/ ")
	fmt.Println("\033[0m")
	fmt.Println("\033[36m   mbongo state-storage core (cli)\033[0m")
}
