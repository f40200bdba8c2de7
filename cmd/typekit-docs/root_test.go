package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageTemplateUsesFormattingFuncs(t *testing.T) {
	tmpl := rootCmd.UsageTemplate()

	assert.Contains(t, tmpl, "boldUpper")
	assert.Contains(t, tmpl, `{{bold .CommandPath}}`)
}

func TestUsageStringRendersHeadings(t *testing.T) {
	// Test output is not a terminal, so boldUpper degrades to plain
	// uppercase and the rendered template is deterministic.
	usage := rootCmd.UsageString()

	require.NotEmpty(t, usage)
	assert.Contains(t, usage, "USAGE:")
	assert.Contains(t, usage, "AVAILABLE COMMANDS:")
	assert.Contains(t, usage, "FLAGS:")
	assert.Contains(t, usage, "gen")
	assert.Contains(t, usage, "preview")
}

func TestFormatBoldUpperWithoutTerminal(t *testing.T) {
	if stdoutIsTerminal() {
		t.Skip("requires non-terminal stdout")
	}
	assert.Equal(t, "USAGE:", formatBoldUpper("Usage:"))
	assert.Equal(t, "plain", formatBold("plain"))
	assert.Equal(t, "MIXED case", formatUpper("mixed CASE"))
}
