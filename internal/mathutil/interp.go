package mathutil

// Lerp linearly interpolates between a and b. The a*(1-t) + b*t form is
// exact at both endpoints, which callers rely on when t is clamped.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// LerpVec3 interpolates each component independently.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
