/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package skills ships the reviewer persona and the review-heuristic
// documents the agent folds into its system prompt. Skills are embedded
// markdown files with YAML frontmatter naming the skill, describing it, and
// listing the file globs it applies to.
package skills

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed docs/*.md
var docsFS embed.FS

//go:embed persona.md
var personaDoc string

// Skill is one review-heuristic document.
type Skill struct {
	// Name identifies the skill, from frontmatter.
	Name string `yaml:"name"`

	// Description is a one-line summary, from frontmatter.
	Description string `yaml:"description"`

	// Applies lists file globs the skill is most relevant to. Empty means
	// every change.
	Applies []string `yaml:"applies"`

	// Body is the markdown content below the frontmatter.
	Body string `yaml:"-"`
}

// IndexEntry is the name/description pair of a skill, shaped for YAML
// binding into prompts.
type IndexEntry struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// All loads every embedded skill, sorted by name. Malformed frontmatter is
// a load error, never a silent skip.
func All() ([]Skill, error) {
	entries, err := fs.Glob(docsFS, "docs/*.md")
	if err != nil {
		return nil, err
	}

	skills := make([]Skill, 0, len(entries))
	for _, path := range entries {
		raw, err := docsFS.ReadFile(path)
		if err != nil {
			return nil, err
		}
		skill, err := parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		skills = append(skills, skill)
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// Persona returns the reviewer persona document.
func Persona() (string, error) {
	persona := strings.TrimSpace(personaDoc)
	if persona == "" {
		return "", fmt.Errorf("persona document is empty")
	}
	return persona, nil
}

// PromptSection renders the skills as a markdown section for the system
// prompt: one heading per skill with its applicability and body.
func PromptSection(skills []Skill) string {
	var b strings.Builder
	for i, s := range skills {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", s.Name)
		if len(s.Applies) > 0 {
			fmt.Fprintf(&b, "Applies to: %s\n\n", strings.Join(s.Applies, ", "))
		}
		b.WriteString(strings.TrimSpace(s.Body))
		b.WriteString("\n")
	}
	return b.String()
}

// Index returns the name/description pairs of the skills, for binding into
// prompts or listing in the CLI.
func Index(skills []Skill) []IndexEntry {
	out := make([]IndexEntry, 0, len(skills))
	for _, s := range skills {
		out = append(out, IndexEntry{Name: s.Name, Description: s.Description})
	}
	return out
}

const frontmatterDelimiter = "---"

// parse splits a skill document into YAML frontmatter and markdown body.
func parse(raw string) (Skill, error) {
	rest, found := strings.CutPrefix(raw, frontmatterDelimiter+"\n")
	if !found {
		return Skill{}, fmt.Errorf("missing frontmatter delimiter")
	}
	front, body, found := strings.Cut(rest, "\n"+frontmatterDelimiter+"\n")
	if !found {
		return Skill{}, fmt.Errorf("unterminated frontmatter")
	}

	var skill Skill
	if err := yaml.Unmarshal([]byte(front), &skill); err != nil {
		return Skill{}, fmt.Errorf("invalid frontmatter: %w", err)
	}
	if skill.Name == "" {
		return Skill{}, fmt.Errorf("frontmatter is missing a name")
	}
	if skill.Description == "" {
		return Skill{}, fmt.Errorf("frontmatter is missing a description")
	}

	skill.Body = strings.TrimSpace(body)
	if skill.Body == "" {
		return Skill{}, fmt.Errorf("skill %s has no body", skill.Name)
	}
	return skill, nil
}
