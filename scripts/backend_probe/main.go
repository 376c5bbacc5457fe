// Command backend_probe checks that an announcement backend answers the
// operations the console depends on. Run it against a new environment before
// pointing the console at it.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type probe struct {
	Name     string
	Method   string
	Path     string
	Body     interface{}
	Critical bool
}

type result struct {
	Probe    probe
	Status   int
	Duration time.Duration
	Err      error
}

func main() {
	var (
		base    string
		timeout time.Duration
	)
	flag.StringVar(&base, "base", "http://localhost:8081", "Announcement backend base URL")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	probes := []probe{
		{Name: "search", Method: http.MethodPost, Path: "/announcements/search", Body: map[string]interface{}{}, Critical: true},
		{Name: "banner search", Method: http.MethodPost, Path: "/announcements/banner/search", Body: map[string]interface{}{"status": "ACTIVE"}, Critical: true},
		{Name: "workspace catalog", Method: http.MethodGet, Path: "/workspaces"},
		{Name: "product catalog", Method: http.MethodGet, Path: "/products"},
		{Name: "announcement scopes", Method: http.MethodGet, Path: "/announcements/scopes"},
	}

	client := &http.Client{Timeout: timeout}
	var failedCritical int

	fmt.Printf("Probing %s\n", base)
	for _, p := range probes {
		res := run(client, base, p)
		printResult(res)
		if res.Critical() {
			failedCritical++
		}
	}

	if failedCritical > 0 {
		fmt.Printf("%d critical operation(s) unavailable\n", failedCritical)
		os.Exit(1)
	}
	fmt.Println("backend looks usable")
}

func (r result) Critical() bool {
	if !r.Probe.Critical {
		return false
	}
	return r.Err != nil || r.Status >= 400
}

func run(client *http.Client, base string, p probe) result {
	res := result{Probe: p}

	var body io.Reader
	if p.Body != nil {
		payload, err := json.Marshal(p.Body)
		if err != nil {
			res.Err = err
			return res
		}
		body = bytes.NewReader(payload)
	}

	url := strings.TrimRight(base, "/") + p.Path
	req, err := http.NewRequest(p.Method, url, body)
	if err != nil {
		res.Err = err
		return res
	}
	if p.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	res.Status = resp.StatusCode
	return res
}

func printResult(res result) {
	state := "OK"
	switch {
	case res.Err != nil:
		state = "ERROR"
	case res.Status >= 400:
		state = "FAIL"
	}
	fmt.Printf("[%s] %-20s %s %s\n", state, res.Probe.Name, res.Probe.Method, res.Probe.Path)
	if res.Err != nil {
		fmt.Printf("  error: %v\n", res.Err)
		return
	}
	fmt.Printf("  status: %d (%s)\n", res.Status, res.Duration)
}
