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

// dot -Tpng g.dot > g.png

import (
	"fmt"
	"io"
)

// Dot renders r's recorded steps as a Graphviz dot digraph: one node per
// popped state, one edge per child it produced. Solved states are filled
// green, dead ends (a step with no children) are filled red, everything
// else is left the default fill.
func Dot(r *Recorder, w io.Writer) error {
	fmt.Fprintf(w, "digraph G {\n")
	fmt.Fprintf(w, "  node [shape=\"box\" style=\"filled\" fillcolor=\"#eeeeee\"]\n")

	for _, s := range r.Steps {
		fillcolor := "#eeeeee"
		switch {
		case s.Parent.Solved():
			fillcolor = "#99ddc8"
		case len(s.Children) == 0:
			fillcolor = "#f98b8b"
		}
		fmt.Fprintf(w, "  n%d [label=\"%s\" fillcolor=\"%s\"]\n", s.ID, label(s.Parent), fillcolor)
		for i, c := range s.Children {
			fmt.Fprintf(w, "  n%d -> n%d_%d [label=\"%d\"]\n", s.ID, s.ID, i, i)
			fmt.Fprintf(w, "  n%d_%d [label=\"%s\"]\n", s.ID, i, label(c))
		}
	}

	fmt.Fprintf(w, "}\n")
	return nil
}
