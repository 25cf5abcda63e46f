// Package clahe implements contrast limited adaptive histogram equalization
// for single-channel 8-bit images. Local contrast is stretched per tile and
// the per-tile mappings are blended bilinearly so tile seams stay invisible,
// which makes printed codes readable under uneven lighting.
package clahe

import "clahe-enhancer/gray"

const (
	numBins = 256

	// DefaultTiles is the tile count per axis when the caller has no opinion.
	DefaultTiles = 8
	// DefaultClipLimit bounds how much any single intensity may dominate a
	// tile's histogram before the excess is spread across all bins.
	DefaultClipLimit = 2.0
)

// Apply enhances pix in place. pix is a row-major grayscale buffer of
// width*height samples, split into tilesX by tilesY tiles of uniform size
// (floor division; right/bottom remainders are not counted into any
// histogram but still receive interpolated values).
//
// Invalid input is a silent no-op: a nil or wrong-length buffer,
// non-positive dimensions or tile counts, or a grid so fine that tiles
// collapse to zero size leave the buffer byte-for-byte untouched.
func Apply(pix []uint8, width, height, tilesX, tilesY int, clipLimit float64) {
	if pix == nil || width <= 0 || height <= 0 {
		return
	}
	if tilesX <= 0 || tilesY <= 0 {
		return
	}
	if len(pix) != width*height {
		return
	}

	tileW := width / tilesX
	tileH := height / tilesY
	if tileW <= 0 || tileH <= 0 {
		return
	}

	pixelsPerTile := tileW * tileH
	clipCount := int(clipLimit * float64(pixelsPerTile) / numBins)
	if clipCount < 1 {
		clipCount = 1
	}

	// One 256-entry lookup table per tile, indexed [tileY*tilesX+tileX].
	cdfs := make([]uint8, tilesX*tilesY*numBins)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			var hist [numBins]int
			tileHistogram(pix, width, tx*tileW, ty*tileH, tileW, tileH, &hist)
			clipHistogram(&hist, clipCount)
			normalizeCDF(&hist, pixelsPerTile, cdfs[(ty*tilesX+tx)*numBins:][:numBins])
		}
	}

	// Stage 4 reads only original intensities, so it writes into a separate
	// buffer that replaces pix once every pixel has been produced.
	out := make([]uint8, len(pix))
	interpolate(pix, out, width, height, tilesX, tilesY, tileW, tileH, cdfs)
	copy(pix, out)
}

// ApplyImage is Apply over the gray.Image form. The image's pixel memory is
// rewritten in place; a nil or inconsistent image is left untouched.
func ApplyImage(img *gray.Image, tilesX, tilesY int, clipLimit float64) {
	if img == nil {
		return
	}
	Apply(img.Pix, img.Width, img.Height, tilesX, tilesY, clipLimit)
}
