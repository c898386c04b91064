package mcp

import (
	"strings"
	"testing"

	"github.com/josephgoksu/thinkwing/internal/prompt"
)

func TestNormalizeParamsDefaults(t *testing.T) {
	params := DivergentToolParams{Thought: "  floating library  "}
	NormalizeParams(&params)

	if params.Thought != "floating library" {
		t.Errorf("thought not trimmed: %q", params.Thought)
	}
	if params.ThinkingMethod != MethodStructuredProcess {
		t.Errorf("default method not applied: %q", params.ThinkingMethod)
	}
	if params.PerspectiveType != prompt.PerspectiveInanimateObject {
		t.Errorf("default perspective not applied: %q", params.PerspectiveType)
	}
	if params.ThoughtNumber != 1 || params.TotalThoughts != 3 {
		t.Errorf("sequence defaults wrong: %d of %d", params.ThoughtNumber, params.TotalThoughts)
	}
}

func TestValidateParamsThoughtTooLong(t *testing.T) {
	params := DivergentToolParams{Thought: strings.Repeat("x", maxThoughtLength+1)}
	NormalizeParams(&params)

	err := ValidateParams(&params)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if err.Details["field"] != "thought" {
		t.Errorf("expected field thought, got %v", err.Details["field"])
	}
	value, _ := err.Details["value"].(string)
	if len(value) > truncateDetailAt+3 {
		t.Errorf("echoed value not truncated: %d chars", len(value))
	}
}

func TestValidateParamsSeedBounds(t *testing.T) {
	for _, seed := range []int64{-1, 1000000} {
		params := DivergentToolParams{Thought: "tide-powered clock", Seed: seed}
		NormalizeParams(&params)
		if err := ValidateParams(&params); err == nil || err.Code != "INVALID_SEED" {
			t.Errorf("seed %d: expected INVALID_SEED, got %v", seed, err)
		}
	}

	params := DivergentToolParams{Thought: "tide-powered clock", Seed: 999999}
	NormalizeParams(&params)
	if err := ValidateParams(&params); err != nil {
		t.Errorf("max seed should be valid, got %v", err)
	}
}

func TestValidateParamsPerspectiveType(t *testing.T) {
	params := DivergentToolParams{Thought: "glass bridge", PerspectiveType: "sentient fog"}
	NormalizeParams(&params)

	err := ValidateParams(&params)
	if err == nil || err.Code != "INVALID_PERSPECTIVE_TYPE" {
		t.Fatalf("expected INVALID_PERSPECTIVE_TYPE, got %v", err)
	}
	if err.Details["field"] != "perspective_type" {
		t.Errorf("expected field perspective_type, got %v", err.Details["field"])
	}
}

func TestValidateParamsHarmfulContent(t *testing.T) {
	cases := []string{
		"check this <script>alert(1)</script>",
		"open javascript:void(0)",
		"embed data:text/html,payload",
		"legacy vbscript:MsgBox",
	}
	for _, thought := range cases {
		params := DivergentToolParams{Thought: thought}
		NormalizeParams(&params)
		err := ValidateParams(&params)
		if err == nil || err.Code != "UNSAFE_CONTENT" {
			t.Errorf("%q: expected UNSAFE_CONTENT, got %v", thought, err)
		}
	}

	params := DivergentToolParams{Thought: "a javascript framework for data viz"}
	NormalizeParams(&params)
	if err := ValidateParams(&params); err != nil {
		t.Errorf("plain mention of javascript should pass, got %v", err)
	}
}

func TestValidateParamsConstraintList(t *testing.T) {
	params := DivergentToolParams{
		Thought:     "roving farmers market",
		Constraints: []string{"ok", strings.Repeat("y", maxConstraintLength+1)},
	}
	NormalizeParams(&params)

	err := ValidateParams(&params)
	if err == nil || err.Code != "FIELD_TOO_LONG" {
		t.Fatalf("expected FIELD_TOO_LONG, got %v", err)
	}
	if err.Details["field"] != "constraints[1]" {
		t.Errorf("expected field constraints[1], got %v", err.Details["field"])
	}
}

func TestValidateParamsSequenceBounds(t *testing.T) {
	params := DivergentToolParams{Thought: "silent disco bus", ThoughtNumber: 1001}
	NormalizeParams(&params)
	if err := ValidateParams(&params); err == nil || err.Code != "INVALID_THOUGHT_NUMBER" {
		t.Errorf("expected INVALID_THOUGHT_NUMBER, got %v", err)
	}

	params = DivergentToolParams{Thought: "silent disco bus", TotalThoughts: 1001}
	NormalizeParams(&params)
	if err := ValidateParams(&params); err == nil || err.Code != "INVALID_TOTAL_THOUGHTS" {
		t.Errorf("expected INVALID_TOTAL_THOUGHTS, got %v", err)
	}
}
