// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package transcript

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// cacheTokenPaths are the two nested locations a cache_read_input_tokens
// field may live at, per spec.md §3's "Usage counter" definition.
var cacheTokenPaths = []string{
	"usage.cache_read_input_tokens",
	"message.usage.cache_read_input_tokens",
}

// rewriteUsageCounters finds the last cache-bearing record in lines and
// zeroes its cache_read_input_tokens field in the returned copy, leaving
// every other line byte-identical. Rewriting considers the entire input,
// including lines that a subsequent cut will drop (spec.md §9 — rewrite
// first, cut second).
func rewriteUsageCounters(lines []string) []string {
	lastIdx := -1
	var lastPath string

	for i, l := range lines {
		if !gjson.Valid(l) {
			continue
		}
		parsed := gjson.Parse(l)
		for _, path := range cacheTokenPaths {
			v := parsed.Get(path)
			if v.Exists() && v.Type == gjson.Number && v.Int() > 0 {
				lastIdx = i
				lastPath = path
			}
		}
	}

	if lastIdx < 0 {
		return lines
	}

	out := make([]string, len(lines))
	copy(out, lines)

	rewritten, err := sjson.Set(out[lastIdx], lastPath, 0)
	if err != nil {
		return lines
	}
	out[lastIdx] = rewritten

	return out
}
