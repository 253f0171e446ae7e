/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	skills, err := All()
	require.NoError(t, err)
	require.NotEmpty(t, skills)

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Description)
		assert.NotEmpty(t, s.Body)
		assert.NotContains(t, s.Body, frontmatterDelimiter+"\n", "frontmatter leaked into body of %s", s.Name)
		names = append(names, s.Name)
	}

	assert.IsIncreasing(t, names, "skills should be sorted by name")
	for _, want := range []string{"security", "correctness", "testing", "change-hygiene"} {
		assert.Contains(t, names, want)
	}
}

func TestPersona(t *testing.T) {
	persona, err := Persona()
	require.NoError(t, err)
	assert.Contains(t, persona, "reviewing a pull request")
	assert.False(t, strings.HasSuffix(persona, "\n"), "persona should be trimmed")
}

func TestPromptSection(t *testing.T) {
	skills, err := All()
	require.NoError(t, err)

	section := PromptSection(skills)
	for _, s := range skills {
		assert.Contains(t, section, "## "+s.Name)
	}
	assert.Contains(t, section, "Applies to: ")
}

func TestIndex(t *testing.T) {
	skills, err := All()
	require.NoError(t, err)

	index := Index(skills)
	require.Len(t, index, len(skills))
	for i, entry := range index {
		assert.Equal(t, skills[i].Name, entry.Name)
		assert.Equal(t, skills[i].Description, entry.Description)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{{
		name: "valid",
		raw:  "---\nname: sample\ndescription: A sample skill.\napplies:\n  - \"**/*.go\"\n---\n\nBody text.\n",
	}, {
		name:    "missing frontmatter",
		raw:     "Just a body.\n",
		wantErr: "missing frontmatter",
	}, {
		name:    "unterminated frontmatter",
		raw:     "---\nname: sample\n",
		wantErr: "unterminated frontmatter",
	}, {
		name:    "invalid yaml",
		raw:     "---\nname: [unclosed\n---\nBody.\n",
		wantErr: "invalid frontmatter",
	}, {
		name:    "missing name",
		raw:     "---\ndescription: No name.\n---\nBody.\n",
		wantErr: "missing a name",
	}, {
		name:    "missing description",
		raw:     "---\nname: sample\n---\nBody.\n",
		wantErr: "missing a description",
	}, {
		name:    "empty body",
		raw:     "---\nname: sample\ndescription: d\n---\n\n",
		wantErr: "no body",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skill, err := parse(tt.raw)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "sample", skill.Name)
			assert.Equal(t, []string{"**/*.go"}, skill.Applies)
			assert.Equal(t, "Body text.", skill.Body)
		})
	}
}
