package nn

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// weightScale shrinks the initial standard-normal draws so that early
// pre-activations stay in the near-linear region of saturating activations.
const weightScale = 0.01

// Init creates one Params value per layer.
//
// Weights are drawn from a standard normal distribution seeded with seed
// and scaled by 0.01; biases start at zero. The draw order is fixed
// (layer by layer, row-major within each W), so the result is bit-identical
// across calls with the same seed, topology, and inputDim.
//
// inputDim is the feature count of the data the first layer will see;
// every later layer's fan-in is the preceding layer's unit count.
//
// Returns a *ShapeError when layers is empty, a layer is malformed, or
// inputDim is not positive.
func Init(layers []FC, inputDim int, seed uint64) ([]Params, error) {
	if len(layers) == 0 {
		return nil, shapeErrf("init", "no layers defined")
	}
	if inputDim <= 0 {
		return nil, shapeErrf("init", "input feature count must be positive, got %d", inputDim)
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}

	params := make([]Params, 0, len(layers))
	prev := inputDim
	for i, layer := range layers {
		if layer.Units <= 0 {
			return nil, shapeErrf("init", "layer %d: unit count must be positive, got %d", i, layer.Units)
		}
		if layer.Activation == nil {
			return nil, shapeErrf("init", "layer %d: nil activation", i)
		}

		w := mat.NewDense(layer.Units, prev, nil)
		for r := 0; r < layer.Units; r++ {
			for c := 0; c < prev; c++ {
				w.Set(r, c, weightScale*normal.Rand())
			}
		}
		b := mat.NewDense(layer.Units, 1, nil)

		params = append(params, Params{W: w, B: b})
		prev = layer.Units
	}
	return params, nil
}
