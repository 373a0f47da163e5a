package autodiff

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/dnet-ml/dnet/internal/nn"
)

// Numeric estimates the gradient with central finite differences over the
// flattened parameter vector. It only needs the cost itself, so it works
// with losses that have no analytic Grad; it is also the reference
// implementation the Backprop tests check against.
type Numeric struct {
	layers []nn.FC
	loss   nn.Loss
	step   float64
}

// NewNumeric compiles a finite-difference provider. step is the
// perturbation size; zero selects gonum's default.
func NewNumeric(layers []nn.FC, loss nn.Loss, step float64) *Numeric {
	return &Numeric{layers: layers, loss: loss, step: step}
}

// Grad perturbs every parameter entry in turn and differences the cost.
func (np *Numeric) Grad(params []nn.Params, x, y *mat.Dense) ([]nn.Grads, error) {
	if len(np.layers) == 0 || len(np.layers) != len(params) {
		return nil, &nn.ShapeError{Op: "grad", Detail: "parameter stack does not match compiled topology"}
	}
	features, _ := x.Dims()
	_, fanIn := params[0].W.Dims()
	if features != fanIn {
		return nil, &nn.ShapeError{Op: "grad", Detail: "batch feature dimension does not match first layer"}
	}
	yRows, _ := y.Dims()
	if want := np.layers[len(np.layers)-1].Units; yRows != want {
		return nil, &nn.ShapeError{Op: "grad", Detail: "batch target dimension does not match final layer"}
	}

	flat := flatten(params)
	cost := func(v []float64) float64 {
		trial := unflatten(v, params)
		pred, err := nn.Predict(np.layers, trial, x)
		if err != nil {
			// Shapes were validated before building the closure; a
			// failure here is a programming error, not bad input.
			panic(err)
		}
		return np.loss.Cost(pred, y)
	}

	grad := make([]float64, len(flat))
	fd.Gradient(grad, cost, flat, &fd.Settings{Formula: fd.Central, Step: np.step})
	return unflatten(grad, params), nil
}

// flatten packs the stack into one vector, W then B per layer, row-major.
func flatten(params []nn.Params) []float64 {
	var n int
	for _, p := range params {
		wr, wc := p.W.Dims()
		br, _ := p.B.Dims()
		n += wr*wc + br
	}
	out := make([]float64, 0, n)
	for _, p := range params {
		out = append(out, p.W.RawMatrix().Data...)
		out = append(out, p.B.RawMatrix().Data...)
	}
	return out
}

// unflatten rebuilds a stack with ref's shapes from a flat vector.
func unflatten(v []float64, ref []nn.Params) []nn.Params {
	out := make([]nn.Params, len(ref))
	off := 0
	for i, p := range ref {
		wr, wc := p.W.Dims()
		br, _ := p.B.Dims()
		w := mat.NewDense(wr, wc, append([]float64(nil), v[off:off+wr*wc]...))
		off += wr * wc
		b := mat.NewDense(br, 1, append([]float64(nil), v[off:off+br]...))
		off += br
		out[i] = nn.Params{W: w, B: b}
	}
	return out
}
