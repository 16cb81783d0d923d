package main

import "task-tracker-system.com/task-tracker-system/cmd"

func main() {
	cmd.Execute()
}
