package ytdlp

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeFakeYtDlp installs a shell script standing in for yt-dlp and returns its path.
// Every invocation appends its arguments, one per line, to the returned args file.
func writeFakeYtDlp(t *testing.T, body string) (binary, argsFile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake yt-dlp scripts need a POSIX shell")
	}

	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args.txt")
	binary = filepath.Join(dir, "yt-dlp")

	script := "#!/bin/sh\nfor a in \"$@\"; do echo \"$a\" >> '" + argsFile + "'; done\n" + body
	if err := os.WriteFile(binary, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write fake yt-dlp: %v", err)
	}
	return binary, argsFile
}

func readArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("Failed to read recorded args: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func argValue(args []string, flag string) (string, bool) {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1], true
		}
	}
	return "", false
}
