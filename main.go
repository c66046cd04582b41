// Command photospan organizes photo directories by the creation dates
// embedded in their photos' EXIF metadata.
package main

import "github.com/jvalecka/photospan/cmd"

func main() {
	cmd.Execute()
}
