package material

// Finish holds a surface's light-response coefficients
type Finish struct {
	Ka        float64 // Ambient
	Kd        float64 // Diffuse
	Ks        float64 // Specular
	Shininess float64 // Specular exponent
	Kr        float64 // Reflectivity
	Kt        float64 // Transmissivity
	IOR       float64 // Index of refraction
}

// NewFinish creates a finish from its seven coefficients
func NewFinish(ka, kd, ks, shininess, kr, kt, ior float64) Finish {
	return Finish{Ka: ka, Kd: kd, Ks: ks, Shininess: shininess, Kr: kr, Kt: kt, IOR: ior}
}

// NewMatteFinish creates a purely ambient+diffuse finish
func NewMatteFinish(ka, kd float64) Finish {
	return Finish{Ka: ka, Kd: kd, IOR: 1}
}

// NewMirrorFinish creates a perfect mirror with no local shading
func NewMirrorFinish() Finish {
	return Finish{Kr: 1, IOR: 1}
}

// IsReflective reports whether the finish spawns reflection rays
func (f Finish) IsReflective() bool {
	return f.Kr > 0
}

// IsTransmissive reports whether the finish spawns refraction rays
func (f Finish) IsTransmissive() bool {
	return f.Kt > 0
}
