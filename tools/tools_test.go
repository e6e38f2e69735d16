package tools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/patterncore/pmatch/engine"
	"github.com/patterncore/pmatch/matcher"
	"github.com/patterncore/pmatch/pattern"
	"github.com/patterncore/pmatch/seq"
)

func runRecorded(t *testing.T) *Recorder {
	t.Helper()
	p := pattern.Cons(pattern.VarBind("x"), pattern.VarBind("xs"))
	target := seq.FromSlice([]pattern.Value{1, 2, 3})
	d := engine.NewDriver(engine.DFS, engine.Seed(p, matcher.List(matcher.Eq), target))

	r := NewRecorder()
	r.Attach(d)

	if _, ok, err := d.Next(); err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	return r
}

func TestRecorderCapturesSolution(t *testing.T) {
	r := runRecorded(t)
	sols := r.Solutions()
	if len(sols) != 1 {
		t.Fatalf("got %d solutions, want 1", len(sols))
	}
	if sols[0][0] != 1 {
		t.Errorf("got x=%v, want 1", sols[0][0])
	}
}

func TestDotRendersDigraph(t *testing.T) {
	r := runRecorded(t)
	var buf bytes.Buffer
	if err := Dot(r, &buf); err != nil {
		t.Fatalf("Dot: %s", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("got %q, want digraph prefix", out)
	}
}

func TestMermaidRendersFlowchart(t *testing.T) {
	r := runRecorded(t)
	var buf bytes.Buffer
	if err := Mermaid(r, &buf); err != nil {
		t.Fatalf("Mermaid: %s", err)
	}
	if !strings.HasPrefix(buf.String(), "flowchart TD") {
		t.Errorf("got %q, want flowchart prefix", buf.String())
	}
}

func TestMarkdownAndHTMLReport(t *testing.T) {
	r := runRecorded(t)
	report := Markdown("cons over a list", r)
	if !strings.Contains(report, "solution(s) found") {
		t.Errorf("report missing solution count: %s", report)
	}

	html := HTML("cons over a list", r)
	if !bytes.Contains(html, []byte("<h1")) {
		t.Errorf("HTML report missing rendered heading: %s", html)
	}
}
