package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/nvaldez/inquiry/internal/tuitest"
)

func TestAskRendersResultCard(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ask/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"first_answer":"Quantum Speedups","second_answer":"Certain problems admit exponential speedups."}`))
	}))
	defer server.Close()

	binary := buildBinary(t)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "-no-alt-screen", "-endpoint", server.URL + "/api/ask/"},
		Width:   100,
		Height:  32,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			{Input: []byte("quantum computing")},
			{Delay: 200 * time.Millisecond, Input: tuitest.KeyEnter},
			{Delay: 2 * time.Second},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        15 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	if !rec.ContainsInAnyFrame("Quantum Speedups") {
		t.Fatal("result title never rendered")
	}
	if !rec.ContainsInAnyFrame("Certain problems admit exponential speedups.") {
		t.Fatal("result summary never rendered")
	}
}

func TestEmptySubmitShowsValidationMessage(t *testing.T) {
	t.Parallel()

	binary := buildBinary(t)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "-no-alt-screen", "-endpoint", "http://127.0.0.1:1/api/ask/"},
		Width:   100,
		Height:  32,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			{Input: tuitest.KeyEnter},
			{Delay: time.Second},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	if !rec.ContainsInAnyFrame("Enter a research topic to explore.") {
		t.Fatal("validation message never rendered")
	}
}

func buildBinary(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	cmdDir := filepath.Dir(file)

	name := "inquiry-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
