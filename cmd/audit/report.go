package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Summary struct {
	Language string `json:"language"`
	Lessons  int    `json:"lessons"`
	Issues   int    `json:"issues"`
	Elapsed  string `json:"elapsed"`
}

type Report struct {
	Summary      Summary            `json:"summary"`
	IssuesByType map[string][]Issue `json:"issuesByType"`
	Issues       []Issue            `json:"issues"`
}

func buildReport(language string, lessons int, issues []Issue, elapsed time.Duration) Report {
	byType := make(map[string][]Issue)
	for _, issue := range issues {
		byType[issue.Type] = append(byType[issue.Type], issue)
	}
	if issues == nil {
		issues = []Issue{}
	}
	return Report{
		Summary: Summary{
			Language: language,
			Lessons:  lessons,
			Issues:   len(issues),
			Elapsed:  elapsed.String(),
		},
		IssuesByType: byType,
		Issues:       issues,
	}
}

func writeReport(path string, report Report) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
