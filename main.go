package main

import "cineplex-booking-cli/cmd"

func main() {
	cmd.Execute()
}
