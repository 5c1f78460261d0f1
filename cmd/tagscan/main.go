// Command tagscan prints the title, artist, album, cover and stream
// properties of MP3 and FLAC files.
package main

import "github.com/simonhull/tagscan/cmd/tagscan/cmd"

func main() {
	cmd.Execute()
}
