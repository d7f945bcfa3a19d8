package linalg

// MulVec returns m × v, out[r] = row_r(m) · v.
func MulVec[R, C Dim](m Matrix[R, C], v Vector[C]) Vector[R] {
	out := ZeroVector[R]()
	for r := range out.data {
		out.data[r] = m.Row(r).Dot(v)
	}
	return out
}

// TransformInPlace overwrites v with m × v. Every output component is
// computed from the input v before any component is written back.
func TransformInPlace[N Dim](m Matrix[N, N], v Vector[N]) {
	var buf [4]float32
	var scratch []float32
	if n := v.Len(); n <= len(buf) {
		scratch = buf[:n]
	} else {
		scratch = make([]float32, n)
	}
	for r := range scratch {
		scratch[r] = m.Row(r).Dot(v)
	}
	copy(v.data, scratch)
}

// TransformAll applies TransformInPlace to each vector of vs.
func TransformAll[N Dim](m Matrix[N, N], vs []Vector[N]) {
	for _, v := range vs {
		TransformInPlace(m, v)
	}
}
