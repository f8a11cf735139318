package models

import (
	"reflect"
	"testing"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"peanut", []string{"peanut"}},
		{"peanut, shellfish ,dairy", []string{"peanut", "shellfish", "dairy"}},
		{"peanut,,dairy", []string{"peanut", "dairy"}},
	}
	for _, tt := range tests {
		if got := SplitCSV(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitCSV(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJoinCSV(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"peanut"}, "peanut"},
		{[]string{" peanut ", "", "dairy"}, "peanut,dairy"},
	}
	for _, tt := range tests {
		if got := JoinCSV(tt.in); got != tt.want {
			t.Errorf("JoinCSV(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
