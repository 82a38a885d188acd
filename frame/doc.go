// Package frame joins two images side by side or one above the other on a
// solid background, with a margin around each image and padding around the
// pair.
//
// Horizontal layout, with m the margin and p the padding:
//
//	width  = wA + wB + 2p + 4m
//	height = max(hA, hB) + 2(m+p)
//
// A is placed at x = m+p and B at x = wA+3m. Vertical layout swaps the
// axes.
package frame
