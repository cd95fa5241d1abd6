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
	"strings"

	"github.com/kestrelchess/kestrel/internal/engine"
)

func main() {
	fmt.Printf("%s by %s\n", engine.Name, engine.Author)

	switch args := os.Args[1:]; {
	case len(args) == 0:
		// no command-line arguments: run the UCI loop over stdin/stdout
		engine.Run(os.Stdin, os.Stdout)

	default:
		// command-line arguments: treat them as a single UCI command,
		// useful for one-shot invocations like "kestrel bench"
		engine.Run(strings.NewReader(strings.Join(args, " ")+"\n"), os.Stdout)
	}
}
