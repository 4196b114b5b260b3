// Carnata - skin tone analysis and colour recommendation
//
// Carnata estimates the dominant skin tone in a photograph, recommends
// complementary colour palettes, and can recolour the detected skin
// region for previews.
package main

import (
	"github.com/carnata/carnata/internal/cli"
)

func main() {
	cli.Execute()
}
