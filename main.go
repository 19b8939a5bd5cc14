package main

import "github.com/deslni01/markdown-course-setup/cmd"

func main() {
	cmd.Execute()
}
