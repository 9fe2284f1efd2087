package main

import "github.com/asharali-codefied/Worklog-manager-gemini/cmd"

func main() {
	cmd.Execute()
}
