// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/eval/classical"
)

// Config controls a tuning run, mirroring the knobs of the teacher's
// own gradient descent loop.
type Config struct {
	Epochs    int
	BatchSize int

	LearningRate     float64
	LearningDropRate float64
	LearningStepRate int

	KPrecision int

	Live bool
}

// Tuner fits classical.Terms in place against Entries. Unlike the
// teacher's tuner, which traces a linear combination of coefficients
// out of an incrementally-updated evaluator, this one estimates each
// term's gradient by finite difference against classical.Evaluate
// directly: classical's term set is small enough that re-evaluating
// the dataset once per parameter per batch is affordable, and it
// needs no parallel tracing infrastructure in the evaluator itself.
type Tuner struct {
	Entries []Entry
	Config  Config

	K float64
}

// epsilon is the centipawn step used to probe each parameter's local
// gradient.
const epsilon = 1.0

func (t *Tuner) Tune() {
	fmt.Println("tune: computing optimal value of K")
	t.K = computeK(t.Entries, t.Config.KPrecision)
	fmt.Printf("tune: K = %v\n", t.K)

	params := classical.Terms.Parameters()
	scalars := classical.Terms.ScalarParameters()
	n := 2*len(params) + len(scalars)

	momentum := make([]float64, n)
	velocity := make([]float64, n)

	rate := t.Config.LearningRate

	errorEpochs := []string{"0"}
	errorValues := []opts.LineData{{Value: computeE(t.Entries, t.K)}}
	renderErrorChart(errorEpochs, errorValues)

	fmt.Printf("tune: E = %v\n", errorValues[0].Value)

	batches := len(t.Entries) / t.Config.BatchSize
	if batches == 0 {
		batches = 1
	}

	var dashboard *liveDashboard
	if t.Config.Live {
		dashboard = newLiveDashboard()
		defer dashboard.Close()
	}

	for epoch := 0; epoch < t.Config.Epochs; epoch++ {
		fmt.Printf("tune: started epoch %d/%d\n", epoch+1, t.Config.Epochs)

		bar := progressbar.NewOptions(batches,
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetItsString("batch"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)

		for batch := 0; batch < batches; batch++ {
			lo := batch * t.Config.BatchSize
			hi := lo + t.Config.BatchSize
			if hi > len(t.Entries) {
				hi = len(t.Entries)
			}

			gradient := computeGradient(t.Entries[lo:hi], params, scalars, t.K)

			for i := range gradient {
				momentum[i] = momentum[i]*0.9 + gradient[i]*0.1
				velocity[i] = velocity[i]*0.999 + gradient[i]*gradient[i]*0.001
				delta := momentum[i] * rate / math.Sqrt(1e-8+velocity[i])
				applyDelta(params, scalars, i, delta)
			}

			_ = bar.Add(1)
		}
		_ = bar.Close()

		E := computeE(t.Entries, t.K)
		fmt.Printf("tune: E = %v\n", E)

		errorEpochs = append(errorEpochs, strconv.Itoa(epoch+1))
		errorValues = append(errorValues, opts.LineData{Value: E})
		renderErrorChart(errorEpochs, errorValues)

		if dashboard != nil {
			dashboard.Update(epoch+1, t.Config.Epochs, E)
		}

		if epoch != 0 && epoch%t.Config.LearningStepRate == 0 {
			rate /= t.Config.LearningDropRate
		}
	}
}

// applyDelta nudges the i-th tunable value by delta. The first
// 2*len(params) entries are the mg/eg halves of params, interleaved;
// the remainder are scalars.
func applyDelta(params []*classical.Score, scalars []*int64, i int, delta float64) {
	if i < 2*len(params) {
		p := params[i/2]
		mg, eg := p.MG(), p.EG()
		if i%2 == 0 {
			mg += eval.Eval(math.Round(delta))
		} else {
			eg += eval.Eval(math.Round(delta))
		}
		*p = classical.S(mg, eg)
		return
	}

	s := scalars[i-2*len(params)]
	*s += int64(math.Round(delta))
}

// computeGradient estimates dE/dparam for every tunable value over
// entries by central finite difference.
func computeGradient(entries []Entry, params []*classical.Score, scalars []*int64, K float64) []float64 {
	gradient := make([]float64, 2*len(params)+len(scalars))

	for i, p := range params {
		original := *p
		mg, eg := original.MG(), original.EG()

		*p = classical.S(mg+epsilon, eg)
		ePlus := computeE(entries, K)
		*p = classical.S(mg-epsilon, eg)
		eMinus := computeE(entries, K)
		*p = original
		gradient[2*i] = (ePlus - eMinus) / (2 * epsilon)

		*p = classical.S(mg, eg+epsilon)
		ePlus = computeE(entries, K)
		*p = classical.S(mg, eg-epsilon)
		eMinus = computeE(entries, K)
		*p = original
		gradient[2*i+1] = (ePlus - eMinus) / (2 * epsilon)
	}

	base := 2 * len(params)
	for i, s := range scalars {
		original := *s
		*s = original + 1
		ePlus := computeE(entries, K)
		*s = original - 1
		eMinus := computeE(entries, K)
		*s = original
		gradient[base+i] = (ePlus - eMinus) / 2
	}

	return gradient
}

// computeE returns the mean squared error between the sigmoid of each
// entry's static evaluation and its recorded game result.
func computeE(entries []Entry, K float64) float64 {
	var total float64
	for _, e := range entries {
		static := float64(classical.Evaluate(e.Board))
		total += math.Pow(e.Result-sigmoid(K, static), 2)
	}
	return total / float64(len(entries))
}

// computeK finds the sigmoid scale that best fits entries, refining
// its search window precision passes at a time exactly as the
// teacher's ComputeK does.
func computeK(entries []Entry, precision int) float64 {
	start, end, step := 0.0, 10.0, 1.0
	best := computeE(entries, start)
	var current, current2 float64

	for i := 0; i <= precision; i++ {
		current = start - step
		for current < end {
			current += step
			current2 = computeE(entries, current)
			if current2 <= best {
				best, start = current2, current
			}
		}

		end = start + step
		start = start - step
		step /= 10.0
	}

	return start
}

func sigmoid(K, static float64) float64 {
	return 1.0 / (1.0 + math.Exp(-K*static/400.0))
}

func renderErrorChart(epochs []string, values []opts.LineData) {
	line := charts.NewLine()
	line.SetXAxis(epochs).AddSeries("Error", values)

	f, err := os.Create("error-plot.html")
	if err != nil {
		return
	}
	defer f.Close()
	_ = line.Render(f)
}
