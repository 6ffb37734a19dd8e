package main

import "github.com/saadjs/lifelog/cmd/lifelog"

func main() {
	lifelog.Execute()
}
