package skeldata

// Color is an RGBA color with each channel normalized to [0, 1].
type Color struct {
	R, G, B, A float32
}
