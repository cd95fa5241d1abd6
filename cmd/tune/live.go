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
	"os"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

// liveDashboard renders a small terminal UI showing epoch progress
// and the evaluation error curve while -live tuning runs. It is purely
// cosmetic: Tune works identically with it disabled.
type liveDashboard struct {
	enabled bool

	progress *widgets.Gauge
	errors   *widgets.Plot
	summary  *widgets.Paragraph

	history []float64
}

func newLiveDashboard() *liveDashboard {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width == 0 {
		width, height = 80, 24
	}

	if err := ui.Init(); err != nil {
		fmt.Fprintln(os.Stderr, colorstring.Color("[yellow]tune: live dashboard unavailable, continuing without it[reset]"))
		return &liveDashboard{enabled: false}
	}

	progress := widgets.NewGauge()
	progress.Title = "epoch"
	progress.SetRect(0, 0, width, 3)

	errs := widgets.NewPlot()
	errs.Title = "error"
	errs.SetRect(0, 3, width, height-4)
	errs.Data = [][]float64{{0}}

	summary := widgets.NewParagraph()
	summary.Title = "status"
	summary.SetRect(0, height-4, width, height)
	summary.Text = wordwrap.WrapString("tuning started", uint(width-4))

	d := &liveDashboard{
		enabled:  true,
		progress: progress,
		errors:   errs,
		summary:  summary,
	}
	ui.Render(progress, errs, summary)
	return d
}

func (d *liveDashboard) Update(epoch, total int, e float64) {
	if !d.enabled {
		return
	}

	d.history = append(d.history, e)

	d.progress.Percent = epoch * 100 / total
	d.errors.Data = [][]float64{d.history}
	d.summary.Text = wordwrap.WrapString(
		colorstring.Color(fmt.Sprintf("[green]epoch %d/%d[reset] error=%.6f", epoch, total, e)),
		uint(d.summaryWidth()),
	)

	ui.Render(d.progress, d.errors, d.summary)
}

func (d *liveDashboard) summaryWidth() int {
	if d.summary.Dx() > 4 {
		return d.summary.Dx() - 4
	}
	return 40
}

func (d *liveDashboard) Close() {
	if d.enabled {
		ui.Close()
	}
}
