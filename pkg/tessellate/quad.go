package tessellate

// FitQuad returns a four-vertex triangle strip (x, y, u, v per corner) that shows a
// srcW x srcH image inside a dstW x dstH viewport without distortion. A negative
// srcH flips the image vertically.
func FitQuad(srcW, srcH, dstW, dstH int) [16]float32 {
	q := [16]float32{
		-1, -1, 0, 1,
		+1, -1, 1, 1,
		-1, +1, 0, 0,
		+1, +1, 1, 0,
	}

	if srcH < 0 {
		srcH = -srcH
		for i := 3; i < len(q); i += 4 {
			q[i] = 1 - q[i]
		}
	}
	if srcW <= 0 || srcH == 0 || dstW <= 0 || dstH <= 0 {
		return q
	}

	srcRatio := float32(srcW) / float32(srcH)
	dstRatio := float32(dstW) / float32(dstH)

	if srcRatio > dstRatio {
		// Horizontal fit
		q[1], q[5] = -dstRatio/srcRatio, -dstRatio/srcRatio
		q[9], q[13] = dstRatio/srcRatio, dstRatio/srcRatio
	} else {
		// Vertical fit
		q[0], q[8] = -srcRatio/dstRatio, -srcRatio/dstRatio
		q[4], q[12] = srcRatio/dstRatio, srcRatio/dstRatio
	}
	return q
}
