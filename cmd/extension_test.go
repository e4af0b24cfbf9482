package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension scripts are shell scripts")
	}
	tempDir := t.TempDir()

	script := "#!/bin/sh\n" +
		"echo \"" + EnvHome + "=$" + EnvHome + "\"\n" +
		"echo \"" + EnvLogLevel + "=$" + EnvLogLevel + "\"\n" +
		"echo \"args=$*\"\n" +
		"exit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "psc-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write psc-hello: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	var out bytes.Buffer
	stdout = &out
	defer func() { stdout = os.Stdout }()
	*storePath = filepath.Join(tempDir, "books")
	*logLevel = "debug"
	defer func() { *storePath, *logLevel = "", "" }()

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("psc-hello was not found")
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	for _, want := range []string{
		EnvHome + "=" + filepath.Join(tempDir, "books"),
		EnvLogLevel + "=debug",
		"args=a b",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("extension output does not contain %q:\n%s", want, out.String())
		}
	}

	if found, _ := RunExtension("missing-extension", nil); found {
		t.Errorf("RunExtension(missing) reported a found extension")
	}
}
