// Iro - wallpaper-based terminal colour schemes
//
// Iro derives a 16-slot terminal colour scheme from a wallpaper image
// and writes it into application configuration files.
package main

import "github.com/irofield/iro/internal/cli"

func main() {
	cli.Execute()
}
