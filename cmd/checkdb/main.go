// Command checkdb validates the MongoDB connection string from the service
// configuration and runs a connectivity smoke test against it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sbilibin2017/fittracker/internal/config"
	"github.com/sbilibin2017/fittracker/internal/diagnostics"
)

func main() {
	configPath, uri, offline := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config: %v\n", err)
		os.Exit(2)
	}
	if uri == "" {
		uri = cfg.MongoURL
	}

	if !run(context.Background(), os.Stdout, uri, cfg.MongoConnectTimeout, offline) {
		os.Exit(1)
	}
}

func parseFlags() (configPath, uri string, offline bool) {
	flag.StringVar(&configPath, "c", "config.env", "Path to configuration file")
	flag.StringVar(&uri, "uri", "", "Connection string to check instead of MONGO_URL")
	flag.BoolVar(&offline, "offline", false, "Only validate the connection string")
	flag.Parse()
	return
}

// run prints the validation report and, unless offline, the smoke test
// result. It reports whether the connection test passed; validation findings
// alone do not fail it.
func run(ctx context.Context, out io.Writer, uri string, timeout time.Duration, offline bool) bool {
	fmt.Fprintln(out, "Connection string:", diagnostics.Redact(uri))

	report := diagnostics.ValidateURI(uri)
	for _, p := range report.Passed {
		fmt.Fprintln(out, "  ok:", p)
	}
	for _, f := range report.Findings {
		fmt.Fprintf(out, "  issue: %s (%s)\n", f.Problem, f.Suggestion)
	}
	if report.SuggestedURI != "" {
		fmt.Fprintln(out, "  suggested:", report.SuggestedURI)
	}

	if offline {
		return report.OK()
	}

	fmt.Fprintln(out, "Connecting...")
	res, err := diagnostics.SmokeTest(ctx, uri, timeout)
	if err != nil {
		fmt.Fprintln(out, "  connection failed:", err)
		for _, h := range diagnostics.Hints(err) {
			fmt.Fprintln(out, "  check:", h)
		}
		return false
	}

	fmt.Fprintln(out, "  server version:", res.ServerVersion)
	fmt.Fprintf(out, "  database %q accessible\n", res.Database)
	fmt.Fprintf(out, "  scratch document %v written and removed\n", res.ScratchID)
	if len(res.Collections) == 0 {
		fmt.Fprintln(out, "  collections: none")
	} else {
		fmt.Fprintln(out, "  collections:", res.Collections)
	}
	return true
}
