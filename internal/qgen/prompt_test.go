package qgen

import (
	"strings"
	"testing"

	"github.com/studychamp/studychamp/internal/bank"
)

func TestBuildUserMessage(t *testing.T) {
	input := GenerateInput{
		Subject:        "Physics",
		Topic:          "mechanics",
		Difficulty:     bank.DifficultyMedium,
		Type:           bank.TypeNumerical,
		PriorQuestions: []string{"What is F = ma?"},
	}

	msg := buildUserMessage(input, DefaultConfig())

	for _, want := range []string{
		"Subject: Physics",
		"Topic: mechanics",
		"Difficulty: medium",
		"Question type: numerical",
		"1. What is F = ma?",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q\n%s", want, msg)
		}
	}
}

func TestBuildUserMessageFreeTypeChoice(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Subject:    "Biology",
		Topic:      "cells",
		Difficulty: bank.DifficultyEasy,
	}, DefaultConfig())

	if !strings.Contains(msg, "Question type: your choice") {
		t.Error("message should leave the type to the model")
	}
	if !strings.Contains(msg, "None") {
		t.Error("empty dedup list should render as None")
	}
}

func TestBuildDedup(t *testing.T) {
	tests := []struct {
		name  string
		prior []string
		max   int
		want  string
	}{
		{"empty", nil, 8, "None"},
		{"one", []string{"q1"}, 8, "1. q1"},
		{"numbered", []string{"q1", "q2"}, 8, "1. q1\n2. q2"},
		{"keeps most recent", []string{"q1", "q2", "q3"}, 2, "1. q2\n2. q3"},
		{"no limit", []string{"q1", "q2"}, 0, "1. q1\n2. q2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildDedup(tt.prior, tt.max); got != tt.want {
				t.Errorf("buildDedup = %q, want %q", got, tt.want)
			}
		})
	}
}
