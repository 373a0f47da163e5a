package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dnet-ml/dnet/internal/nn"
)

func testParams(t *testing.T) []nn.Params {
	t.Helper()
	params, err := nn.Init([]nn.FC{
		{Units: 4, Activation: nn.Tanh{}},
		{Units: 1, Activation: nn.Sigmoid{}},
	}, 3, 0)
	require.NoError(t, err)
	return params
}

func zeroGrads(params []nn.Params) []nn.Grads {
	out := make([]nn.Grads, len(params))
	for i, p := range params {
		out[i] = p.ZerosLike()
	}
	return out
}

func TestMomentumRule_CounterStartsAtOneAndIncrements(t *testing.T) {
	params := testParams(t)
	r := &momentumRule{lr: 0.1, beta: 0.9}
	r.start(params)
	require.Equal(t, 1, r.t)

	for i := 0; i < 3; i++ {
		r.step(params, zeroGrads(params))
	}
	assert.Equal(t, 4, r.t, "counter going into the fourth batch")
}

func TestMomentumRule_VelocityShapes(t *testing.T) {
	params := testParams(t)
	r := &momentumRule{lr: 0.1, beta: 0.9}
	r.start(params)

	require.Len(t, r.vel, len(params))
	for i := range params {
		pr, pc := params[i].W.Dims()
		vr, vc := r.vel[i].W.Dims()
		assert.Equal(t, pr, vr)
		assert.Equal(t, pc, vc)
		assert.Zero(t, mat.Norm(r.vel[i].W, 1), "velocity must start at zero")
		assert.Zero(t, mat.Norm(r.vel[i].B, 1), "velocity must start at zero")
	}
}

// countingRule records the loop's calls: start must run exactly once per
// training run, and step once per batch across all epochs.
type countingRule struct {
	starts int
	steps  int
}

func (r *countingRule) start([]nn.Params)            { r.starts++ }
func (r *countingRule) step([]nn.Params, []nn.Grads) { r.steps++ }

func TestRun_RuleLifecycle(t *testing.T) {
	c, err := newCore(Config{
		Layers: []nn.FC{
			{Units: 4, Activation: nn.Tanh{}},
			{Units: 1, Activation: nn.Sigmoid{}},
		},
		Loss:      nn.MSE{},
		Accuracy:  nn.MAE(),
		Epochs:    3,
		LR:        0.1,
		BatchSize: 5,
	})
	require.NoError(t, err)

	// 12 examples at batch size 5: three batches per epoch.
	x := mat.NewDense(3, 12, nil)
	y := mat.NewDense(1, 12, nil)

	r := &countingRule{}
	require.NoError(t, c.run(x, y, r))

	assert.Equal(t, 1, r.starts, "accumulator state must survive epoch boundaries")
	assert.Equal(t, 9, r.steps, "one update per batch per epoch")
	assert.Len(t, c.history.Cost, 3)
	assert.Len(t, c.history.Accuracy, 3)
}
