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
	"fmt"
	"io"
	"strings"
)

// Mermaid renders r's recorded steps as a Mermaid flowchart, for dropping
// straight into a Markdown doc (GitHub and most doc tooling render a
// ```mermaid fenced block inline, unlike dot which needs a separate
// render step).
func Mermaid(r *Recorder, w io.Writer) error {
	fmt.Fprintf(w, "flowchart TD\n")

	for _, s := range r.Steps {
		fmt.Fprintf(w, "  n%d[%q]\n", s.ID, label(s.Parent))
		switch {
		case s.Parent.Solved():
			fmt.Fprintf(w, "  style n%d fill:#99ddc8\n", s.ID)
		case len(s.Children) == 0:
			fmt.Fprintf(w, "  style n%d fill:#f98b8b\n", s.ID)
		}
		for i, c := range s.Children {
			fmt.Fprintf(w, "  n%d_%d[%q]\n", s.ID, i, label(c))
			fmt.Fprintf(w, "  n%d -->|%d| n%d_%d\n", s.ID, i, s.ID, i)
		}
	}

	return nil
}

// sanitize strips characters that would break a Mermaid node label or a
// dot HTML label; label() already formats values with %v, which can
// contain quotes or newlines for composite targets.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, `"`, `'`)
	return strings.ReplaceAll(s, "\n", " ")
}
