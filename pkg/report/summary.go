// Package report turns batches of condition evaluation outcomes
// into summary files a CI job can archive: a JSON document for
// machines and a Markdown table for humans.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alex859/precise-assertions/pkg/condition"
)

// Outcome is one named evaluation result.
type Outcome struct {
	// Name identifies the check that produced this outcome.
	Name string `json:"name"`

	// Matched indicates whether the condition held.
	Matched bool `json:"matched"`

	// Node is the diagnostic tree of the evaluation.
	Node condition.Node `json:"node"`

	// Rendered is the text form of the diagnostic tree.
	Rendered string `json:"rendered"`
}

// FromEvaluation builds a named Outcome from an evaluation.
func FromEvaluation(
	name string,
	ev condition.Evaluation,
) Outcome {
	return Outcome{
		Name:     name,
		Matched:  ev.Matched,
		Node:     ev.Node,
		Rendered: condition.Render(ev.Node),
	}
}

// Summary aggregates a batch of outcomes.
type Summary struct {
	GeneratedAt time.Time `json:"generated_at"`
	Outcomes    []Outcome `json:"outcomes"`
	Total       int       `json:"total"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	PassRate    float64   `json:"pass_rate"`
}

// BuildSummary aggregates outcomes in the order given.
func BuildSummary(outcomes []Outcome) *Summary {
	summary := &Summary{
		GeneratedAt: time.Now(),
		Outcomes:    outcomes,
		Total:       len(outcomes),
	}

	for _, o := range outcomes {
		if o.Matched {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	if summary.Total > 0 {
		summary.PassRate =
			float64(summary.Passed) / float64(summary.Total)
	}

	return summary
}

// WriteJSON writes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// SaveSummary writes the summary to both JSON and Markdown files
// in the given output directory.
func SaveSummary(summary *Summary, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	jsonPath := filepath.Join(outputDir, "summary.json")
	f, err := os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf(
			"failed to write JSON summary: %w", err,
		)
	}
	if err := summary.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	mdPath := filepath.Join(outputDir, "summary.md")
	mdContent := generateSummaryMarkdown(summary)
	if err := os.WriteFile(
		mdPath, []byte(mdContent), 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write Markdown summary: %w", err,
		)
	}

	return nil
}

// generateSummaryMarkdown creates markdown from a summary.
func generateSummaryMarkdown(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Assertion Summary\n\n")
	sb.WriteString(
		fmt.Sprintf(
			"**Generated:** %s\n\n",
			summary.GeneratedAt.Format(time.RFC3339),
		),
	)

	sb.WriteString("## Checks\n\n")
	sb.WriteString("| Check | Outcome |\n")
	sb.WriteString("|-------|---------|\n")

	for _, o := range summary.Outcomes {
		outcome := "PASSED"
		if !o.Matched {
			outcome = "FAILED"
		}
		sb.WriteString(
			fmt.Sprintf("| %s | %s |\n", o.Name, outcome),
		)
	}

	failed := failedOutcomes(summary)
	if len(failed) > 0 {
		sb.WriteString("\n## Failures\n\n")
		for _, o := range failed {
			sb.WriteString(fmt.Sprintf("### %s\n\n", o.Name))
			sb.WriteString("```\n")
			sb.WriteString(o.Rendered)
			sb.WriteString("\n```\n\n")
		}
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(
		fmt.Sprintf("| Total | %d |\n", summary.Total),
	)
	sb.WriteString(
		fmt.Sprintf("| Passed | %d |\n", summary.Passed),
	)
	sb.WriteString(
		fmt.Sprintf("| Failed | %d |\n", summary.Failed),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Pass Rate | %.0f%% |\n", summary.PassRate*100,
		),
	)

	return sb.String()
}

func failedOutcomes(summary *Summary) []Outcome {
	failed := make([]Outcome, 0)
	for _, o := range summary.Outcomes {
		if !o.Matched {
			failed = append(failed, o)
		}
	}
	return failed
}
