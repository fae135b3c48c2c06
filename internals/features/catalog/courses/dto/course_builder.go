package dto

import (
	"fmt"
	"strings"

	"coursedesk_backend/internals/features/catalog/courses/model"
)

// The course builder edits nested lists. Incomplete rows are dropped and the
// remaining ones get ids 1..n in list order.

func NormalizeModules(in []model.CourseModule) []model.CourseModule {
	out := make([]model.CourseModule, 0, len(in))
	for _, m := range in {
		m.Title = strings.TrimSpace(m.Title)
		m.Description = strings.TrimSpace(m.Description)
		if m.Title == "" || m.Description == "" {
			continue
		}
		m.ID = len(out) + 1
		out = append(out, m)
	}
	return out
}

func NormalizeIsFor(in []model.CourseIsFor) []model.CourseIsFor {
	out := make([]model.CourseIsFor, 0, len(in))
	for _, e := range in {
		e.Description = strings.TrimSpace(e.Description)
		if e.Description == "" {
			continue
		}
		e.ID = len(out) + 1
		out = append(out, e)
	}
	return out
}

func NormalizePoints(in []model.SectionPoint) []model.SectionPoint {
	out := make([]model.SectionPoint, 0, len(in))
	for _, p := range in {
		p.Title = strings.TrimSpace(p.Title)
		p.Description = strings.TrimSpace(p.Description)
		if p.Title == "" || p.Description == "" {
			continue
		}
		p.ID = len(out) + 1
		out = append(out, p)
	}
	return out
}

// NormalizeSections drops sections without a name or without a complete point.
func NormalizeSections(in []model.CourseSection) []model.CourseSection {
	out := make([]model.CourseSection, 0, len(in))
	for _, s := range in {
		s.SectionName = strings.TrimSpace(s.SectionName)
		s.Points = NormalizePoints(s.Points)
		if s.SectionName == "" || len(s.Points) == 0 {
			continue
		}
		s.ID = len(out) + 1
		out = append(out, s)
	}
	return out
}

// UniqueNames trims names and drops blanks and case-insensitive duplicates, keeping the first spelling.
func UniqueNames(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, n := range in {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}

// MoveSection moves the section at index from to index to and renumbers.
func MoveSection(sections []model.CourseSection, from, to int) ([]model.CourseSection, error) {
	n := len(sections)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("section index out of range (0..%d)", n-1)
	}
	out := make([]model.CourseSection, 0, n)
	out = append(out, sections...)

	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]model.CourseSection{moved}, out[to:]...)...)

	for i := range out {
		out[i].ID = i + 1
	}
	return out, nil
}
