package nn

import "gonum.org/v1/gonum/mat"

// Predict propagates x through every layer in order and returns the final
// activation. For each layer the pre-activation is z = W·a + B, with B
// broadcast across columns, and a is replaced by the activated z.
//
// Predict is pure: it never mutates params or x, and calling it twice with
// the same arguments yields identical output.
//
// Returns a *ShapeError when x's feature dimension disagrees with the first
// layer's fan-in, or when params does not line up with layers.
func Predict(layers []FC, params []Params, x *mat.Dense) (*mat.Dense, error) {
	if len(layers) == 0 || len(layers) != len(params) {
		return nil, shapeErrf("predict", "have %d layers and %d parameter sets", len(layers), len(params))
	}
	features, _ := x.Dims()
	_, fanIn := params[0].W.Dims()
	if features != fanIn {
		return nil, shapeErrf("predict", "input has %d features, first layer expects %d", features, fanIn)
	}

	a := x
	for i := range layers {
		z := new(mat.Dense)
		z.Mul(params[i].W, a)

		rows, cols := z.Dims()
		for r := 0; r < rows; r++ {
			bias := params[i].B.At(r, 0)
			for c := 0; c < cols; c++ {
				z.Set(r, c, layers[i].Activation.Apply(z.At(r, c)+bias))
			}
		}
		a = z
	}
	return a, nil
}
