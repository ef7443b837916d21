// Command lutbake bakes, checks and applies 2D strip color grading LUTs.
//
//	lutbake generate --style sepia -o sepia.png
//	lutbake validate -i sepia.png
//	lutbake convert -i sepia.png -o sepia_packed.png
//	lutbake grade -i photo.jpg -l sepia.png -o graded.png
package main

import (
	_ "image/jpeg"
	"os"

	// Extra strip and frame formats.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("lutbake failed")
		os.Exit(1)
	}
}
