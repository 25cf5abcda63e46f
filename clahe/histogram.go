package clahe

// tileHistogram counts intensity occurrences over the tile whose top-left
// corner is (startX, startY). The counts sum to tileW*tileH.
func tileHistogram(pix []uint8, stride, startX, startY, tileW, tileH int, hist *[numBins]int) {
	for y := startY; y < startY+tileH; y++ {
		row := pix[y*stride+startX : y*stride+startX+tileW]
		for _, p := range row {
			hist[p]++
		}
	}
}

// clipHistogram caps every bin at clipCount and spreads the accumulated
// excess back over the histogram: floor(excess/256) to every bin, then one
// extra unit to remainder bins spaced evenly across the range. The total
// count is conserved.
func clipHistogram(hist *[numBins]int, clipCount int) {
	excess := 0
	for i, n := range hist {
		if n > clipCount {
			excess += n - clipCount
			hist[i] = clipCount
		}
	}
	if excess == 0 {
		return
	}

	increment := excess / numBins
	remainder := excess % numBins
	if increment > 0 {
		for i := range hist {
			hist[i] += increment
		}
	}
	for i := 0; i < remainder; i++ {
		hist[i*numBins/remainder]++
	}
}

// normalizeCDF folds the histogram into a running sum rescaled to [0, 255].
// The result is non-decreasing and its last entry is at most 255.
func normalizeCDF(hist *[numBins]int, pixelsPerTile int, cdf []uint8) {
	cumSum := 0
	for i, n := range hist {
		cumSum += n
		v := cumSum * 255 / pixelsPerTile
		if v > 255 {
			v = 255
		}
		cdf[i] = uint8(v)
	}
}
