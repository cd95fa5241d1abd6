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

// Command tune fits the classical evaluator's term weights against a
// labelled dataset of FEN positions, minimizing the mean squared error
// between a sigmoid of the static evaluation and the game's actual
// result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kestrelchess/kestrel/pkg/eval/classical"
)

func main() {
	dataset := flag.String("dataset", "", "path to a labelled dataset produced by cmd/datagen")
	output := flag.String("output", "tuned.json", "path to write the tuned term set to")
	epochs := flag.Int("epochs", 100, "number of training epochs")
	batchSize := flag.Int("batch-size", 4096, "number of positions per gradient batch")
	learningRate := flag.Float64("learning-rate", 1.0, "initial learning rate")
	learningDropRate := flag.Float64("learning-drop-rate", 1.25, "factor the learning rate is divided by on a step")
	learningStepRate := flag.Int("learning-step-rate", 25, "epochs between learning rate drops")
	kPrecision := flag.Int("k-precision", 5, "number of refinement passes when computing the sigmoid scale K")
	live := flag.Bool("live", false, "show a live terminal dashboard of the tuning run")
	flag.Parse()

	if *dataset == "" {
		fmt.Fprintln(os.Stderr, "tune: -dataset is required")
		os.Exit(1)
	}

	entries, err := LoadDataset(*dataset)
	if err != nil {
		log.Fatalf("tune: loading dataset: %v", err)
	}
	if len(entries) == 0 {
		log.Fatal("tune: dataset is empty")
	}

	t := &Tuner{
		Entries: entries,
		Config: Config{
			Epochs:           *epochs,
			BatchSize:        *batchSize,
			LearningRate:     *learningRate,
			LearningDropRate: *learningDropRate,
			LearningStepRate: *learningStepRate,
			KPrecision:       *kPrecision,
			Live:             *live,
		},
	}

	t.Tune()

	if err := classical.SaveTerms(*output, classical.Terms); err != nil {
		log.Fatalf("tune: saving tuned terms: %v", err)
	}
	fmt.Printf("tune: wrote tuned terms to %s\n", *output)
}
