package forecast

import (
	"fmt"
	"math"
)

// Model is the opaque trained sequence model: one evaluation maps a scaled
// lookback window to the next scaled value. Implementations must be safe for
// concurrent use after load.
type Model interface {
	Predict(window []float64) (float64, error)
}

// LSTMLayer holds the exported parameters of one recurrent layer in PyTorch
// gate order (input, forget, cell, output), so weight matrices are
// (4*hidden x in) and (4*hidden x hidden).
type LSTMLayer struct {
	WeightIH [][]float64 `json:"weight_ih"`
	WeightHH [][]float64 `json:"weight_hh"`
	BiasIH   []float64   `json:"bias_ih"`
	BiasHH   []float64   `json:"bias_hh"`
}

// LSTM is a stacked LSTM with a linear head, evaluated as a plain forward
// pass over exported weights. The trained models are 2 layers with hidden
// size 64 over a univariate input, but the evaluation is shape-driven.
type LSTM struct {
	InputSize  int         `json:"input_size"`
	HiddenSize int         `json:"hidden_size"`
	Layers     []LSTMLayer `json:"layers"`
	FCWeight   []float64   `json:"fc_weight"`
	FCBias     float64     `json:"fc_bias"`
}

// Validate checks that all weight shapes are mutually consistent.
func (m *LSTM) Validate() error {
	if m.HiddenSize <= 0 {
		return fmt.Errorf("invalid hidden size %d", m.HiddenSize)
	}
	if m.InputSize != 1 {
		return fmt.Errorf("expected univariate input, got input size %d", m.InputSize)
	}
	if len(m.Layers) == 0 {
		return fmt.Errorf("model has no recurrent layers")
	}
	for i, layer := range m.Layers {
		in := m.InputSize
		if i > 0 {
			in = m.HiddenSize
		}
		gates := 4 * m.HiddenSize
		if len(layer.WeightIH) != gates || len(layer.WeightHH) != gates ||
			len(layer.BiasIH) != gates || len(layer.BiasHH) != gates {
			return fmt.Errorf("layer %d: expected %d gate rows", i, gates)
		}
		for _, row := range layer.WeightIH {
			if len(row) != in {
				return fmt.Errorf("layer %d: input weight row has %d columns, want %d", i, len(row), in)
			}
		}
		for _, row := range layer.WeightHH {
			if len(row) != m.HiddenSize {
				return fmt.Errorf("layer %d: hidden weight row has %d columns, want %d", i, len(row), m.HiddenSize)
			}
		}
	}
	if len(m.FCWeight) != m.HiddenSize {
		return fmt.Errorf("linear head has %d weights, want %d", len(m.FCWeight), m.HiddenSize)
	}
	return nil
}

// Predict runs the forward pass over one window and returns the next scaled
// value. The window is consumed oldest-first.
func (m *LSTM) Predict(window []float64) (float64, error) {
	if len(window) == 0 {
		return 0, fmt.Errorf("empty input window")
	}

	// Sequence of per-timestep inputs; starts univariate, becomes the
	// hidden sequence of the layer below.
	seq := make([][]float64, len(window))
	for t, v := range window {
		seq[t] = []float64{v}
	}

	for _, layer := range m.Layers {
		h := make([]float64, m.HiddenSize)
		c := make([]float64, m.HiddenSize)
		out := make([][]float64, len(seq))
		for t, x := range seq {
			h, c = layer.step(x, h, c, m.HiddenSize)
			out[t] = h
		}
		seq = out
	}

	last := seq[len(seq)-1]
	y := m.FCBias
	for i, w := range m.FCWeight {
		y += w * last[i]
	}
	return y, nil
}

// step advances one timestep. Gate order follows the PyTorch export:
// rows [0,H) input gate, [H,2H) forget, [2H,3H) cell candidate, [3H,4H) output.
func (l *LSTMLayer) step(x, h, c []float64, hidden int) ([]float64, []float64) {
	gates := make([]float64, 4*hidden)
	for row := range gates {
		sum := l.BiasIH[row] + l.BiasHH[row]
		for k, xv := range x {
			sum += l.WeightIH[row][k] * xv
		}
		for k, hv := range h {
			sum += l.WeightHH[row][k] * hv
		}
		gates[row] = sum
	}

	nh := make([]float64, hidden)
	nc := make([]float64, hidden)
	for i := 0; i < hidden; i++ {
		ig := sigmoid(gates[i])
		fg := sigmoid(gates[hidden+i])
		gg := math.Tanh(gates[2*hidden+i])
		og := sigmoid(gates[3*hidden+i])
		nc[i] = fg*c[i] + ig*gg
		nh[i] = og * math.Tanh(nc[i])
	}
	return nh, nc
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}
