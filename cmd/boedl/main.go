package main

import "github.com/J-Rios/boe-borme-downloader/internal/cli"

func main() {
	cli.Execute()
}
