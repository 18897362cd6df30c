package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectShell(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{"/bin/zsh", "zsh"},
		{"/usr/local/bin/bash", "bash"},
		{"/usr/bin/fish", "fish"},
		{"/bin/sh", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := detectShell(tt.env); got != tt.expected {
			t.Errorf("detectShell(%q) = %q, want %q", tt.env, got, tt.expected)
		}
	}
}

func TestCompletionTargetFor(t *testing.T) {
	target, err := completionTargetFor("bash", "/home/u")
	if err != nil {
		t.Fatal(err)
	}
	if target.File != filepath.Join("/home/u", ".bash_completion.d", "sitetidy") {
		t.Errorf("File = %q", target.File)
	}
	if target.RC != filepath.Join("/home/u", ".bashrc") {
		t.Errorf("RC = %q", target.RC)
	}

	fish, err := completionTargetFor("fish", "/home/u")
	if err != nil {
		t.Fatal(err)
	}
	if fish.RC != "" {
		t.Errorf("fish RC = %q, want none", fish.RC)
	}

	for _, shell := range []string{"", "tcsh"} {
		if _, err := completionTargetFor(shell, "/home/u"); err == nil {
			t.Errorf("completionTargetFor(%q) should fail", shell)
		}
	}
}

func TestInstallCompletion(t *testing.T) {
	home, err := os.MkdirTemp("", "completion_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(home)

	target, err := completionTargetFor("zsh", home)
	if err != nil {
		t.Fatal(err)
	}
	if err := target.install(); err != nil {
		t.Fatalf("install() error = %v", err)
	}
	script, err := os.ReadFile(target.File)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(script), "sitetidy") {
		t.Error("completion script does not mention sitetidy")
	}

	updated, err := target.updateRC()
	if err != nil || !updated {
		t.Fatalf("first updateRC() = %v, %v", updated, err)
	}
	updated, err = target.updateRC()
	if err != nil || updated {
		t.Errorf("second updateRC() = %v, %v, want no change", updated, err)
	}
}

func TestWriteCompletion(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCompletion("bash", &buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty bash completion")
	}
	if err := writeCompletion("tcsh", &buf); err == nil {
		t.Error("writeCompletion should reject unknown shells")
	}
}
