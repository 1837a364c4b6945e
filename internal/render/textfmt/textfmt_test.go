package textfmt

import (
	"strings"
	"testing"
)

func TestToHTMLParagraphs(t *testing.T) {
	got := ToHTML("First thought.\n\nSecond thought.")
	want := "<p>First thought.</p><p>Second thought.</p>"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestToHTMLMultiLineParagraphKeepsLineBreaks(t *testing.T) {
	got := ToHTML("Line one\nLine two")
	want := "<p>Line one<br>Line two</p>"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestToHTMLBulletList(t *testing.T) {
	input := "Strong week overall:\n- Scored twice\n* Assisted once\n• Full 90 minutes"
	got := ToHTML(input)
	want := "<p>Strong week overall:</p><ul><li>Scored twice</li><li>Assisted once</li><li>Full 90 minutes</li></ul>"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestToHTMLNumberedList(t *testing.T) {
	got := ToHTML("1. First start\n2) Second start")
	want := "<ul><li>First start</li><li>Second start</li></ul>"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestToHTMLBlankLineSplitsLists(t *testing.T) {
	got := ToHTML("- one\n\n- two")
	want := "<ul><li>one</li></ul><ul><li>two</li></ul>"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestToHTMLEscapesContent(t *testing.T) {
	tests := []string{
		`<script>alert("x")</script> & more`,
		"quotes ' and \" mixed with <b>",
		"- bullet with <img src=x>",
	}

	for _, input := range tests {
		got := ToHTML(input)

		for _, forbidden := range []string{"<script", "<img", "<b>", `"x"`, "' and"} {
			if strings.Contains(got, forbidden) {
				t.Errorf("output %q contains unescaped %q", got, forbidden)
			}
		}
	}
}

func TestToHTMLPassThroughOnExistingMarkup(t *testing.T) {
	inputs := []string{
		"<p>already formatted</p>",
		"line<br/>break",
		"<ul><li>x</li></ul>",
		"<div>block</div>",
	}

	for _, input := range inputs {
		if got := ToHTML(input); got != input {
			t.Errorf("expected pass-through for %q, got %q", input, got)
		}
	}
}

func TestToHTMLIdempotent(t *testing.T) {
	inputs := []string{
		"Plain paragraph",
		"- a\n- b",
		"Multi\nline\n\nparagraphs",
	}

	for _, input := range inputs {
		once := ToHTML(input)
		twice := ToHTML(once)

		if once != twice {
			t.Errorf("not idempotent for %q: %q vs %q", input, once, twice)
		}
	}
}

func TestToHTMLDropsEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n  \n"} {
		if got := ToHTML(input); got != "" {
			t.Errorf("expected empty output for %q, got %q", input, got)
		}
	}
}

func TestSimpleLineBreaks(t *testing.T) {
	got := SimpleLineBreaks("Para one\nstill one\n\nPara two")
	want := "<p>Para one<br>still one</p><p>Para two</p>"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSimpleLineBreaksPassThrough(t *testing.T) {
	input := "<p>kept as is & not escaped</p>"
	if got := SimpleLineBreaks(input); got != input {
		t.Fatalf("expected pass-through, got %q", got)
	}
}

func TestSimpleLineBreaksEscapes(t *testing.T) {
	got := SimpleLineBreaks("a <tag> & 'quote'")

	if strings.Contains(got, "<tag>") || strings.Contains(got, "& '") {
		t.Fatalf("unescaped content in %q", got)
	}
}
