package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"helium/internal/config"
	"helium/internal/media"
)

// execute runs the root command with args against a throwaway config dir.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), stdin, args...)
}

// executeIn runs the root command with args using configDir as
// XDG_CONFIG_HOME.
func executeIn(t *testing.T, configDir, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", configDir)
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores flag globals, which cobra leaves set between runs.
func resetFlags() {
	flagPlayer, flagNoMagic, flagNoOnTop = "", false, false
	flagPrint, flagJSON, flagDebug = false, false, false
	flagOpen, flagOpenHome = false, false
	cfg = nil
}

func TestRewriteCommand(t *testing.T) {
	out, err := execute(t, "",
		"rewrite",
		"https://www.youtube.com/watch?v=ABC123&t=1h2m3s",
		"https://www.twitch.tv/directory",
		"not a url",
	)
	if err != nil {
		t.Fatalf("rewrite error: %v", err)
	}

	want := "https://youtube.com/embed/ABC123?start=3723\n" +
		"https://www.twitch.tv/directory\n" +
		"not a url\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("rewrite output mismatch (-want +got):\n%s", diff)
	}
}

func TestRewriteCommandJSON(t *testing.T) {
	out, err := execute(t, "", "rewrite", "--json", "https://vimeo.com/76979871")
	if err != nil {
		t.Fatalf("rewrite error: %v", err)
	}

	var got []media.Target
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	want := []media.Target{{
		Input:     "https://vimeo.com/76979871",
		URL:       "https://player.vimeo.com/video/76979871",
		Platform:  "vimeo",
		Rewritten: true,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rewrite JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenPrint(t *testing.T) {
	out, err := execute(t, "", "--print", "youtu.be/ABC123?t=90")
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	if out != "http://youtube.com/embed/ABC123?start=90\n" {
		t.Errorf("output = %q", out)
	}
}

func TestOpenNoMagic(t *testing.T) {
	out, err := execute(t, "", "--print", "--no-magic", "youtu.be/ABC123")
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	if out != "http://youtu.be/ABC123\n" {
		t.Errorf("output = %q", out)
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	if _, err := execute(t, "", "--print", "hello"); err == nil {
		t.Error("expected an error for input that is not a URL")
	}
}

func TestHandle(t *testing.T) {
	out, err := execute(t, "", "handle", "--print", "helium://https://www.twitch.tv/videos/123456")
	if err != nil {
		t.Fatalf("handle error: %v", err)
	}
	if out != "https://player.twitch.tv?html5&video=v123456\n" {
		t.Errorf("output = %q", out)
	}

	if _, err := execute(t, "", "handle", "--print", "https://vimeo.com/1"); err == nil {
		t.Error("handle should reject URLs without the helium scheme")
	}
}

func TestScanStdin(t *testing.T) {
	text := "watch https://vimeo.com/76979871 and https://example.com/page."
	out, err := execute(t, text, "scan")
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}

	want := "https://player.vimeo.com/video/76979871\nhttps://example.com/page\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("scan output mismatch (-want +got):\n%s", diff)
	}
}

func TestScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.txt")
	if err := os.WriteFile(path, []byte("http://dai.ly/video/x2jvvep\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "scan", path)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if out != "http://www.dailymotion.com/embed/video/x2jvvep\n" {
		t.Errorf("output = %q", out)
	}
}

func TestScanNothingFound(t *testing.T) {
	if _, err := execute(t, "no links here", "scan"); err == nil {
		t.Error("scan should fail when no URLs are found")
	}
}

func TestHomeAndMagicPersist(t *testing.T) {
	dir := t.TempDir()

	out, err := executeIn(t, dir, "", "home", "example.org/start")
	if err != nil {
		t.Fatalf("home set: %v", err)
	}
	if out != "http://example.org/start\n" {
		t.Errorf("home output = %q", out)
	}

	out, err = executeIn(t, dir, "", "magic", "off")
	if err != nil {
		t.Fatalf("magic off: %v", err)
	}
	if out != "magic URLs: off\n" {
		t.Errorf("magic output = %q", out)
	}

	// A flag override must not leak into the saved file.
	if _, err := executeIn(t, dir, "", "--player", "vlc", "magic", "on"); err != nil {
		t.Fatalf("magic on: %v", err)
	}

	saved, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := config.Default()
	want.HomePage = "http://example.org/start"
	if diff := cmp.Diff(want, saved); diff != "" {
		t.Errorf("saved config mismatch (-want +got):\n%s", diff)
	}

	out, err = executeIn(t, dir, "", "home")
	if err != nil {
		t.Fatalf("home: %v", err)
	}
	if out != "http://example.org/start\n" {
		t.Errorf("home output = %q", out)
	}
}

func TestMagicRejectsUnknownArg(t *testing.T) {
	if _, err := execute(t, "", "magic", "maybe"); err == nil {
		t.Error("magic should only accept on or off")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "helium dev\n" {
		t.Errorf("version output = %q", out)
	}
}
