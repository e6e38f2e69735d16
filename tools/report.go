/* Copyright 2018 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tools

import (
	"bytes"
	"fmt"

	md "github.com/russross/blackfriday/v2"

	"github.com/patterncore/pmatch/util/testutil"
)

// Markdown renders a short human-readable report of a recorded run: a
// title, the number of steps taken, and the bindings of every solution
// found, in discovery order. Each binding list is rendered through
// testutil.JS, a best-effort JSON renderer that falls back to %#v.
func Markdown(title string, r *Recorder) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "%d step(s) explored, %d solution(s) found.\n\n", len(r.Steps), len(r.Solutions()))

	if sols := r.Solutions(); len(sols) > 0 {
		fmt.Fprintf(&b, "## Solutions\n\n")
		for i, s := range sols {
			fmt.Fprintf(&b, "%d. `%s`\n", i+1, testutil.JS([]interface{}(s)))
		}
	}

	return b.String()
}

// HTML renders the same report as Markdown, run through blackfriday.
func HTML(title string, r *Recorder) []byte {
	return md.Run([]byte(Markdown(title, r)))
}
