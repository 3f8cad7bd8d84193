package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/i18nscan/pkg/extract"
	"github.com/suzuki-shunsuke/i18nscan/pkg/report"
	"github.com/suzuki-shunsuke/i18nscan/pkg/sarif"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func finding(text string, line int) *extract.Finding {
	return &extract.Finding{
		Text:     text,
		Line:     line,
		Category: extract.CategoryUnknown,
		Rule:     extract.RuleElementText,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	r := report.New([]*report.FileReport{
		{Path: "src/b.tsx", Findings: []*extract.Finding{finding("乙", 1)}},
		{Path: "src/empty.tsx", Findings: []*extract.Finding{}},
		nil,
		{Path: "src/a.tsx", Findings: []*extract.Finding{finding("甲", 2), finding("丙", 1)}},
	})
	paths := make([]string, len(r.Files))
	for i, file := range r.Files {
		paths[i] = file.Path
	}
	if diff := cmp.Diff([]string{"src/a.tsx", "src/b.tsx"}, paths); diff != "" {
		t.Fatal(diff)
	}
	if r.Get("src/empty.tsx") != nil {
		t.Fatal("a file without findings must be absent")
	}
	if n := r.FindingCount(); n != 3 {
		t.Fatalf("wanted 3 findings, got %d", n)
	}
	if r.Empty() {
		t.Fatal("report must not be empty")
	}
	if !report.New(nil).Empty() {
		t.Fatal("report must be empty")
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("长", 100)
	data := []struct {
		name string
		text string
		exp  string
	}{
		{name: "short", text: "你好", exp: "你好"},
		{name: "multi line", text: "欢迎\n   使用", exp: "欢迎 使用"},
		{name: "exactly 60", text: strings.Repeat("字", 60), exp: strings.Repeat("字", 60)},
		{name: "long", text: long, exp: strings.Repeat("长", 57) + "..."},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got := report.Preview(d.text)
			if got != d.exp {
				t.Fatalf("wanted %s, got %s", d.exp, got)
			}
			if n := utf8.RuneCountInString(got); n > 60 {
				t.Fatalf("preview is too long: %d", n)
			}
		})
	}
	if utf8.RuneCountInString(long) != 100 {
		t.Fatal("Preview must not modify the text")
	}
}

func TestTextWriter_Write(t *testing.T) {
	t.Parallel()
	findings := make([]*extract.Finding, 12)
	for i := range findings {
		findings[i] = finding(fmt.Sprintf("文本%d", i), i+1)
	}
	long := strings.Repeat("长", 80)
	r := report.New([]*report.FileReport{
		{Path: "src/many.tsx", Findings: findings},
		{Path: "src/long.tsx", Findings: []*extract.Finding{finding(long, 7)}},
	})
	buf := &bytes.Buffer{}
	if err := report.NewTextWriter(buf).Write(r); err != nil {
		t.Fatal(err)
	}
	output := buf.String()
	for _, want := range []string{
		"src/many.tsx (12)",
		"src/long.tsx (1)",
		"L1: 文本0",
		"L10: 文本9",
		"... and 2 more",
		"L7: " + strings.Repeat("长", 57) + "...",
		"Total: 2 files, 13 findings",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output doesn't contain %q:\n%s", want, output)
		}
	}
	for _, notWant := range []string{"文本10", "文本11"} {
		if strings.Contains(output, notWant) {
			t.Errorf("output contains %q:\n%s", notWant, output)
		}
	}
	if r.Files[0].Findings[0].Text != long {
		t.Fatal("the stored text must not be modified")
	}
}

func TestTextWriter_Write_empty(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	if err := report.NewTextWriter(buf).Write(report.New(nil)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Total: 0 files, 0 findings\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func newTreeReport() *report.TreeReport {
	return report.New([]*report.FileReport{
		{Path: "src/a.tsx", Findings: []*extract.Finding{finding("你好", 3), finding("世界", 4)}},
		{Path: "src/b.tsx", Findings: []*extract.Finding{finding("请输入", 5)}},
	})
}

func TestWriter_Write_json(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	if err := report.NewWriter(buf, report.FormatJSON, "v1.0.0").Write(newTreeReport()); err != nil {
		t.Fatal(err)
	}
	got := &report.TreeReport{}
	if err := json.Unmarshal(buf.Bytes(), got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(newTreeReport(), got); diff != "" {
		t.Fatal(diff)
	}
}

func TestWriter_Write_yaml(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	if err := report.NewWriter(buf, report.FormatYAML, "v1.0.0").Write(newTreeReport()); err != nil {
		t.Fatal(err)
	}
	output := buf.String()
	for _, want := range []string{"path: src/a.tsx", "text: 你好", "line: 5"} {
		if !strings.Contains(output, want) {
			t.Errorf("output doesn't contain %q:\n%s", want, output)
		}
	}
}

func TestWriter_Write_sarif(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	if err := report.NewWriter(buf, report.FormatSARIF, "v1.0.0").Write(newTreeReport()); err != nil {
		t.Fatal(err)
	}
	log := &sarif.Log{}
	if err := json.Unmarshal(buf.Bytes(), log); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if log.Version != sarif.Version {
		t.Errorf("version: wanted %s, got %s", sarif.Version, log.Version)
	}
	if len(log.Runs) != 1 {
		t.Fatalf("wanted 1 run, got %d", len(log.Runs))
	}
	run := log.Runs[0]
	if run.Tool.Driver.Version != "v1.0.0" {
		t.Errorf("tool version: wanted v1.0.0, got %s", run.Tool.Driver.Version)
	}
	if len(run.Results) != 3 {
		t.Fatalf("wanted 3 results, got %d", len(run.Results))
	}
	loc := run.Results[2].Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "src/b.tsx" || loc.Region.StartLine != 5 {
		t.Errorf("unexpected location: %+v", loc)
	}
	if run.Results[0].RuleID != extract.RuleElementText {
		t.Errorf("rule id: wanted %s, got %s", extract.RuleElementText, run.Results[0].RuleID)
	}
}

func TestValidateFormat(t *testing.T) {
	t.Parallel()
	for _, format := range append([]string{""}, report.Formats...) {
		if err := report.ValidateFormat(format); err != nil {
			t.Errorf("format %q: %v", format, err)
		}
	}
	if err := report.ValidateFormat("xml"); err == nil {
		t.Error("xml must be rejected")
	}
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk is full")
	}
	w.n--
	return len(p), nil
}

func TestTextWriter_Write_error(t *testing.T) {
	t.Parallel()
	findings := make([]*extract.Finding, 11)
	for i := range findings {
		findings[i] = finding(fmt.Sprintf("文本%d", i), i+1)
	}
	r := report.New([]*report.FileReport{{Path: "src/many.tsx", Findings: findings}})
	// header, 10 findings, "... and 1 more", summary
	for n := range 13 {
		if err := report.NewTextWriter(&failingWriter{n: n}).Write(r); err == nil {
			t.Errorf("the error of write %d must be returned", n+1)
		}
	}
	if err := report.NewTextWriter(&failingWriter{n: 13}).Write(r); err != nil {
		t.Fatal(err)
	}
}
