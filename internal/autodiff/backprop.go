package autodiff

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dnet-ml/dnet/internal/nn"
)

// Backprop differentiates the cost analytically by reverse-mode
// backpropagation through the fixed topology it was compiled for.
type Backprop struct {
	layers []nn.FC
	loss   nn.Loss
}

// NewBackprop compiles an analytic gradient provider for the given
// topology and loss.
func NewBackprop(layers []nn.FC, loss nn.Loss) *Backprop {
	return &Backprop{layers: layers, loss: loss}
}

// Grad runs one forward pass caching pre-activations, then walks the layers
// in reverse accumulating dCost/dW and dCost/dB per layer.
func (bp *Backprop) Grad(params []nn.Params, x, y *mat.Dense) ([]nn.Grads, error) {
	if len(bp.layers) == 0 || len(bp.layers) != len(params) {
		return nil, &nn.ShapeError{Op: "grad", Detail: "parameter stack does not match compiled topology"}
	}
	features, _ := x.Dims()
	_, fanIn := params[0].W.Dims()
	if features != fanIn {
		return nil, &nn.ShapeError{Op: "grad", Detail: "batch feature dimension does not match first layer"}
	}
	yRows, _ := y.Dims()
	if want := bp.layers[len(bp.layers)-1].Units; yRows != want {
		return nil, &nn.ShapeError{Op: "grad", Detail: "batch target dimension does not match final layer"}
	}

	depth := len(bp.layers)

	// Forward pass, keeping each layer's pre-activation and activation.
	zs := make([]*mat.Dense, depth)
	as := make([]*mat.Dense, depth+1)
	as[0] = x
	for l := 0; l < depth; l++ {
		z := new(mat.Dense)
		z.Mul(params[l].W, as[l])
		rows, cols := z.Dims()
		a := mat.NewDense(rows, cols, nil)
		for r := 0; r < rows; r++ {
			bias := params[l].B.At(r, 0)
			for c := 0; c < cols; c++ {
				zv := z.At(r, c) + bias
				z.Set(r, c, zv)
				a.Set(r, c, bp.layers[l].Activation.Apply(zv))
			}
		}
		zs[l] = z
		as[l+1] = a
	}

	// delta for the output layer: dCost/dPred ⊙ act'(z).
	delta := bp.loss.Grad(as[depth], y)
	hadamardDeriv(delta, zs[depth-1], bp.layers[depth-1].Activation)

	grads := make([]nn.Grads, depth)
	for l := depth - 1; ; l-- {
		gw := new(mat.Dense)
		gw.Mul(delta, as[l].T())
		grads[l] = nn.Grads{W: gw, B: rowSums(delta)}
		if l == 0 {
			break
		}
		next := new(mat.Dense)
		next.Mul(params[l].W.T(), delta)
		hadamardDeriv(next, zs[l-1], bp.layers[l-1].Activation)
		delta = next
	}
	return grads, nil
}

// hadamardDeriv multiplies d in place by act'(z), entry for entry.
func hadamardDeriv(d, z *mat.Dense, act nn.Activation) {
	rows, cols := d.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d.Set(r, c, d.At(r, c)*act.Deriv(z.At(r, c)))
		}
	}
}

// rowSums collapses the columns of d into a (rows, 1) bias gradient.
func rowSums(d *mat.Dense) *mat.Dense {
	rows, cols := d.Dims()
	out := mat.NewDense(rows, 1, nil)
	for r := 0; r < rows; r++ {
		var sum float64
		for c := 0; c < cols; c++ {
			sum += d.At(r, c)
		}
		out.Set(r, 0, sum)
	}
	return out
}
