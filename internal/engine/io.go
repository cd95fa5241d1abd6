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

package engine

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kestrelchess/kestrel/pkg/uci"
)

// read starts the reader goroutine: it scans lines from r, parses each
// as a uci.Command, and sends it on cmds. A blank line is ignored
// rather than rejected, since GUIs occasionally send one. Parse errors
// are reported back as an info string rather than stopping the reader,
// since one malformed line shouldn't end the session. read returns
// once r hits EOF or an error, closing cmds so the caller knows input
// is exhausted.
func read(r io.Reader, cmds chan<- uci.Command, errs chan<- uci.Response) {
	defer close(cmds)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		cmd, err := uci.Parse(line)
		if err != nil {
			errs <- uci.Info("%v", err)
			continue
		}

		cmds <- cmd
	}
}

// write starts the writer goroutine: it drains resp and writes each
// Response to w as its own line, returning once resp is closed.
func write(w io.Writer, resp <-chan uci.Response) {
	out := bufio.NewWriter(w)
	defer out.Flush()

	for r := range resp {
		fmt.Fprintln(out, r)
		out.Flush()
	}
}
