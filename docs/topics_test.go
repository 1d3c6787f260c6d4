package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bashRun      = "bash run"
	consoleCheck = "console check"
	bashCheck    = "bash check"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in docs/readme.md", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Option Valuation", "# Historical Volatility", "# Market Data Providers"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopics(*) is missing %q", title)
		}
	}
	if _, err := GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(nope) expected an error")
	}
}

func TestCodeBlocks(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs fin")
	}
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	bin := buildFin(t, t.TempDir())
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, bin, file)
		})
	}
}

// HELPER

// Block represents a fenced code block in the markdown file.
type Block struct {
	Type    string
	Content string
	File    string
	Line    int
}

// buildFin builds the fin executable in tmp and returns its path.
func buildFin(t *testing.T, tmp string) string {
	t.Helper()
	output := filepath.Join(tmp, "fin")
	buildCmd := exec.Command("go", "build", "-o", output, "../fin/")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build fin command: %v\n%s", err, out)
	}
	return output
}

// parseMarkdown parses a markdown file and returns its executable blocks.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Info.Segment.Value(content))
		switch lang {
		case bashCheck, bashRun, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var blockContent strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			blockContent.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Type:    lang,
			Content: blockContent.String(),
			File:    file,
			Line:    lineNumber(content, fcb.Info.Segment.Start),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineNumber computes the line number of an offset in source.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

// runBlocks executes the blocks of a markdown file in order.
func runBlocks(t *testing.T, bin, file string) {
	t.Helper()
	newPath := fmt.Sprintf("PATH=%s%c%s", filepath.Dir(bin), os.PathListSeparator, os.Getenv("PATH"))
	env := append(os.Environ(), newPath)
	dir := t.TempDir()

	var previousOutput string
	for _, block := range parseMarkdown(t, file) {
		if block.Type == consoleCheck {
			want := strings.TrimSpace(block.Content)
			got := strings.TrimSpace(previousOutput)
			if want != got {
				t.Errorf("%s:%d: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n", block.File, block.Line, got, want)
			}
			continue
		}

		cmd := exec.Command("bash", "-c", "set -eo pipefail; "+block.Content)
		cmd.Dir = dir
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		if block.Type == bashRun {
			previousOutput = string(output)
		}
		if err != nil {
			t.Errorf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
		}
	}
}
