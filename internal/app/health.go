package app

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// runHealth probes a running server's health endpoint and reports the
// result. Exit code 0 means the server answered healthy.
func runHealth(args []string) int {
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	host := fs.String("host", "127.0.0.1", "Server host")
	port := fs.Int("port", 8090, "Server HTTP port")
	timeout := fs.Duration("timeout", 10*time.Second, "Request timeout")

	if code, ok := parseOrExitCode(fs, args); !ok {
		return code
	}
	if *port <= 0 || *port > 65535 {
		fmt.Fprintln(os.Stderr, "--port must be between 1 and 65535")
		return 2
	}

	endpoint := fmt.Sprintf("http://%s/api/v1/health", net.JoinHostPort(*host, strconv.Itoa(*port)))
	client := &http.Client{Timeout: *timeout}

	resp, err := client.Get(endpoint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		return 1
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		return 1
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Health check failed: %s returned status %d\n", endpoint, resp.StatusCode)
		return 1
	}

	var payload struct {
		Status string `json:"status"`
		Data   struct {
			Service   string   `json:"service"`
			Providers []string `json:"providers"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		return 1
	}
	if payload.Status != "success" {
		fmt.Fprintf(os.Stderr, "Health check failed: server reported status %q\n", payload.Status)
		return 1
	}

	fmt.Printf("%s ok (providers: %s)\n", payload.Data.Service, strings.Join(payload.Data.Providers, ", "))
	return 0
}
