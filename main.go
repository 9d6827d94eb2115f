package main

import "cloud-storage-manager/cmd"

func main() {
	cmd.Execute()
}
