package clahe

// interpolate produces the output intensity for every pixel by blending the
// CDF lookups of the four tiles nearest the pixel in tile-center space.
// Pixels outside the covered tile range (including the uncovered right and
// bottom margins when the dimensions do not divide evenly) clamp to the
// nearest edge tile pair instead of extrapolating.
func interpolate(src, dst []uint8, width, height, tilesX, tilesY, tileW, tileH int, cdfs []uint8) {
	maxTX := tilesX - 2
	if maxTX < 0 {
		maxTX = 0
	}
	maxTY := tilesY - 2
	if maxTY < 0 {
		maxTY = 0
	}

	for y := 0; y < height; y++ {
		fy := float64(y)/float64(tileH) - 0.5
		ty0 := int(fy)
		if ty0 > maxTY {
			ty0 = maxTY
		}
		if ty0 < 0 {
			ty0 = 0
		}
		ty1 := ty0 + 1
		if ty1 > tilesY-1 {
			ty1 = tilesY - 1
		}
		ay := fy - float64(ty0)
		if ay < 0 {
			ay = 0
		} else if ay > 1 {
			ay = 1
		}

		rowTop := cdfs[ty0*tilesX*numBins:]
		rowBottom := cdfs[ty1*tilesX*numBins:]

		for x := 0; x < width; x++ {
			fx := float64(x)/float64(tileW) - 0.5
			tx0 := int(fx)
			if tx0 > maxTX {
				tx0 = maxTX
			}
			if tx0 < 0 {
				tx0 = 0
			}
			tx1 := tx0 + 1
			if tx1 > tilesX-1 {
				tx1 = tilesX - 1
			}
			ax := fx - float64(tx0)
			if ax < 0 {
				ax = 0
			} else if ax > 1 {
				ax = 1
			}

			p := int(src[y*width+x])
			v00 := float64(rowTop[tx0*numBins+p])
			v01 := float64(rowTop[tx1*numBins+p])
			v10 := float64(rowBottom[tx0*numBins+p])
			v11 := float64(rowBottom[tx1*numBins+p])

			top := v00*(1-ax) + v01*ax
			bottom := v10*(1-ax) + v11*ax
			value := top*(1-ay) + bottom*ay
			if value < 0 {
				value = 0
			} else if value > 255 {
				value = 255
			}
			dst[y*width+x] = uint8(value)
		}
	}
}
