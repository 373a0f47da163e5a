package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/dnet-ml/dnet/internal/nn"
)

// Momentum implements gradient descent with a bias-corrected velocity
// accumulator.
//
// Per batch, componentwise on W and B independently:
//
//	v = (beta*v + (1 - beta*g)) / (1 - beta^t)
//	param -= lr * v
//
// where t counts batches starting at 1 and never resets between epochs.
// The velocity rule deliberately deviates from the conventional
// exponential-moving-average form; see the package design notes.
type Momentum struct {
	Unimplemented
	core *core
}

// NewMomentum creates a Momentum optimizer. Beta defaults to 0.9 and must
// lie in [0, 1); invalid hyperparameters are rejected here.
func NewMomentum(cfg Config) (*Momentum, error) {
	c, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	return &Momentum{core: c}, nil
}

// Train runs the full Momentum loop over x and y. The velocity accumulator
// and batch counter are fresh per call and persist for the whole run.
func (m *Momentum) Train(x, y *mat.Dense) error {
	return m.core.run(x, y, &momentumRule{lr: m.core.lr, beta: m.core.beta})
}

// History returns the per-epoch cost and accuracy records.
func (m *Momentum) History() History { return m.core.history }

// Params returns the parameter stack owned by this optimizer.
func (m *Momentum) Params() []nn.Params { return m.core.params }

// momentumRule carries the velocity stack and the bias-correction counter.
type momentumRule struct {
	lr   float64
	beta float64
	vel  []nn.Params
	t    int
}

// start zeroes one velocity accumulator per layer and resets the counter.
func (r *momentumRule) start(params []nn.Params) {
	r.vel = make([]nn.Params, len(params))
	for i, p := range params {
		r.vel[i] = p.ZerosLike()
	}
	r.t = 1
}

func (r *momentumRule) step(params []nn.Params, grads []nn.Grads) {
	correction := 1.0 - math.Pow(r.beta, float64(r.t))
	for i := range params {
		r.advance(r.vel[i].W, grads[i].W, correction)
		r.advance(r.vel[i].B, grads[i].B, correction)
		axpy(params[i].W, r.vel[i].W, -r.lr)
		axpy(params[i].B, r.vel[i].B, -r.lr)
	}
	r.t++
}

// advance applies the bias-corrected velocity update in place.
func (r *momentumRule) advance(v, g *mat.Dense, correction float64) {
	vd := v.RawMatrix().Data
	gd := g.RawMatrix().Data
	for i := range vd {
		vd[i] = (r.beta*vd[i] + (1.0 - r.beta*gd[i])) / correction
	}
}
