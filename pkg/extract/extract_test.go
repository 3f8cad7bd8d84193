package extract_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/i18nscan/pkg/extract"
)

func TestExtractor_Extract(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		param   *extract.Param
		content string
		exp     []*extract.Finding
	}{
		{
			name:    "empty",
			content: "",
			exp:     []*extract.Finding{},
		},
		{
			name:    "ascii only",
			content: "const a = 'hello'\n<div>world</div>\n",
			exp:     []*extract.Finding{},
		},
		{
			name:    "element text",
			content: "import React from 'react'\n\n<div>你好世界</div>\n",
			exp: []*extract.Finding{
				{Text: "你好世界", Line: 3, Category: extract.CategoryUnknown, Rule: extract.RuleElementText},
			},
		},
		{
			name:    "attribute value isn't duplicated by the generic assignment",
			content: "\n\n\n\n<input placeholder=\"请输入姓名\" />\n",
			exp: []*extract.Finding{
				{Text: "请输入姓名", Line: 5, Category: extract.CategoryUnknown, Rule: extract.RuleAttributeValue},
			},
		},
		{
			name:    "commented out",
			content: "// const x = '测试'\n",
			exp:     []*extract.Finding{},
		},
		{
			name:    "comment after the literal",
			content: "const a = '你好' // 注释\n",
			exp: []*extract.Finding{
				{Text: "你好", Line: 1, Category: extract.CategoryUnknown, Rule: extract.RuleGenericAssignment},
			},
		},
		{
			name:    "braced literal",
			content: `<Modal label={"确定"} />`,
			exp: []*extract.Finding{
				{Text: "确定", Line: 1, Category: extract.CategoryUnknown, Rule: extract.RuleBracedLiteral},
			},
		},
		{
			name:    "rule order then document order",
			content: "<input value=\"测试\">\n<p>测试</p>\n",
			exp: []*extract.Finding{
				{Text: "测试", Line: 2, Category: extract.CategoryUnknown, Rule: extract.RuleElementText},
				{Text: "测试", Line: 1, Category: extract.CategoryUnknown, Rule: extract.RuleAttributeValue},
			},
		},
		{
			// known limitation: the key is (text, line), so the second occurrence is lost
			name:    "same text twice on a line",
			content: `<Button title="取消" /><span>取消</span>`,
			exp: []*extract.Finding{
				{Text: "取消", Line: 1, Category: extract.CategoryUnknown, Rule: extract.RuleElementText},
			},
		},
		{
			// known limitation: "//" in a URL is taken as a comment marker
			name:    "comment marker in a URL",
			content: `<a href="https://example.com" title="链接">`,
			exp:     []*extract.Finding{},
		},
		{
			name:    "line of a multi line element text is the line of the match",
			content: "a = b // x >\n  欢迎\n</p>\n",
			exp: []*extract.Finding{
				{Text: "欢迎", Line: 1, Category: extract.CategoryUnknown, Rule: extract.RuleElementText},
			},
		},
		{
			name:    "other scripts are ignored by default",
			content: "<p>こんにちは</p>",
			exp:     []*extract.Finding{},
		},
		{
			name:    "kana",
			param:   &extract.Param{Scripts: []string{"Hiragana", "Katakana"}},
			content: "<p>こんにちは</p>",
			exp: []*extract.Finding{
				{Text: "こんにちは", Line: 1, Category: extract.CategoryUnknown, Rule: extract.RuleElementText},
			},
		},
		{
			name:    "custom attributes",
			param:   &extract.Param{Attributes: []string{"label"}},
			content: `<Field label="名称" />`,
			exp: []*extract.Finding{
				{Text: "名称", Line: 1, Category: extract.CategoryUnknown, Rule: extract.RuleAttributeValue},
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			param := d.param
			if param == nil {
				param = &extract.Param{}
			}
			extractor, err := extract.New(param)
			if err != nil {
				t.Fatal(err)
			}
			findings := extractor.Extract(d.content)
			if diff := cmp.Diff(d.exp, findings); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestExtractor_Extract_idempotent(t *testing.T) {
	t.Parallel()
	content := `<div title="标题">
  <p>{'内容'}</p>
  <input placeholder="请输入" value="默认" />
</div>
`
	extractor, err := extract.New(&extract.Param{})
	if err != nil {
		t.Fatal(err)
	}
	first := extractor.Extract(content)
	second := extractor.Extract(content)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}
	if len(first) == 0 {
		t.Fatal("no finding")
	}
}

func TestExtractor_Extract_dedupLaw(t *testing.T) {
	t.Parallel()
	content := `<p title="提示">提示</p>
<Input message="提示" defaultValue="提示" value={'提示'} />
`
	extractor, err := extract.New(&extract.Param{})
	if err != nil {
		t.Fatal(err)
	}
	type key struct {
		text string
		line int
	}
	seen := map[key]struct{}{}
	for _, finding := range extractor.Extract(content) {
		k := key{text: finding.Text, line: finding.Line}
		if _, ok := seen[k]; ok {
			t.Fatalf("duplicated finding: %+v", finding)
		}
		seen[k] = struct{}{}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		param *extract.Param
		isErr bool
	}{
		{
			name:  "default",
			param: &extract.Param{},
		},
		{
			name:  "unknown script",
			param: &extract.Param{Scripts: []string{"Klingon"}},
			isErr: true,
		},
		{
			name:  "invalid attribute",
			param: &extract.Param{Attributes: []string{"data title"}},
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			_, err := extract.New(d.param)
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}
