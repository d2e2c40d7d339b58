package utils

const (
	NODETOL = 1.e-12
	// MAPTOL is the barycentric slack used when classifying points on panel boundaries
	MAPTOL = 1.e-10
	// AREATOL scales the squared panel extent below which a panel is degenerate
	AREATOL = 1.e-12
)
