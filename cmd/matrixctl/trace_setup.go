// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// setupTracing routes every library tracer to w at the given level. An empty
// level leaves the default no-op tracers in place.
func setupTracing(w io.Writer, level string) error {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "":
		return nil
	case "error", "info", "debug":
	default:
		return fmt.Errorf("unknown trace level %q (must be error, info or debug)", level)
	}

	t := gologadapter.New()
	t.SetOutput(w)
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return t }))
	t.Infof("trace level is %s", t.GetTraceLevel())

	return nil
}
