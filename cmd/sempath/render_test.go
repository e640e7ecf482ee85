package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360/sempath/graph"
	"github.com/c360/sempath/search"
)

func TestRenderResult_FoundPath(t *testing.T) {
	result := &search.Result{
		State: search.StateFound,
		Path: graph.Path{
			{Rel: "IsA", Neighbor: "/c/en/animal", Direction: graph.DirectionOutgoing},
			{Rel: "Desires", Neighbor: "/c/en/cat", Direction: graph.DirectionIncoming},
			{Rel: "RelatedTo", Neighbor: "/c/en/philosophy", Direction: graph.DirectionOutgoing},
		},
	}

	var sb strings.Builder
	renderResult(&sb, "/c/en/dog", "/c/en/philosophy", result)
	out := sb.String()

	assert.Contains(t, out, "Path from /c/en/dog to /c/en/philosophy (3 steps):")
	assert.Contains(t, out, "--[is a]--> /c/en/animal")
	assert.Contains(t, out, "<--[desires]-- /c/en/cat")
	// Symmetric relations render without an arrowhead
	assert.Contains(t, out, "--[is related to]-- /c/en/philosophy")
}

func TestRenderResult_NotFound(t *testing.T) {
	var sb strings.Builder
	renderResult(&sb, "/c/en/dog", "/c/en/qxzv", &search.Result{State: search.StateExhausted})

	assert.Equal(t, "No path found between /c/en/dog and /c/en/qxzv\n", sb.String())
}

func TestRenderResult_TrivialPath(t *testing.T) {
	var sb strings.Builder
	renderResult(&sb, "/c/en/dog", "/c/en/dog", &search.Result{
		State: search.StateFound,
		Path:  graph.Path{},
	})

	assert.Equal(t, "/c/en/dog and /c/en/dog are the same node\n", sb.String())
}

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		cfg     CLIConfig
		wantErr bool
	}{
		{"valid pair", CLIConfig{From: "/c/en/dog", To: "/c/en/cat", LogLevel: "info", LogFormat: "text"}, false},
		{"missing to", CLIConfig{From: "/c/en/dog", LogLevel: "info", LogFormat: "text"}, true},
		{"bad node id", CLIConfig{From: "dog", To: "/c/en/cat", LogLevel: "info", LogFormat: "text"}, true},
		{"all skips pair check", CLIConfig{All: true, LogLevel: "info", LogFormat: "text"}, false},
		{"bad log level", CLIConfig{From: "/c/en/dog", To: "/c/en/cat", LogLevel: "loud", LogFormat: "text"}, true},
		{"bad log format", CLIConfig{From: "/c/en/dog", To: "/c/en/cat", LogLevel: "info", LogFormat: "xml"}, true},
		{"bad metrics port", CLIConfig{From: "/c/en/dog", To: "/c/en/cat", LogLevel: "info", LogFormat: "text", MetricsPort: 70000}, true},
		{"version skips everything", CLIConfig{ShowVersion: true}, false},
		{"validate skips pair check", CLIConfig{Validate: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFlags(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
