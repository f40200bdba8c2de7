package main

import (
	_ "embed"
	"strings"
)

var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	// MsgUsageTemplate is the cobra usage template. It leans on the
	// formatting funcs registered in initTemplateFormatting for its
	// section headings.
	MsgUsageTemplate = strings.TrimSpace(msgUsageTemplateRaw)
)
