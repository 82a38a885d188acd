package text

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	hinting Hinting
}

func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting: HintingFull,
	}
}

// WithHinting sets the hinting mode used for both measuring and drawing.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}
