// Package diagnostics checks MongoDB connection strings and connectivity
// before the service is deployed.
package diagnostics

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sbilibin2017/fittracker/internal/mongodb"
)

// Finding is a problem found in a connection string together with its fix.
type Finding struct {
	Problem    string
	Suggestion string
}

// URIReport is the result of ValidateURI.
type URIReport struct {
	Passed       []string
	Findings     []Finding
	SuggestedURI string // set when findings exist and credentials are present
}

// OK reports whether no problem was found.
func (r URIReport) OK() bool {
	return len(r.Findings) == 0
}

func (r *URIReport) pass(format string, args ...any) {
	r.Passed = append(r.Passed, fmt.Sprintf(format, args...))
}

func (r *URIReport) fail(problem, suggestion string) {
	r.Findings = append(r.Findings, Finding{Problem: problem, Suggestion: suggestion})
}

// ValidateURI inspects a MongoDB Atlas connection string for the usual
// mistakes: wrong scheme, missing or unescaped credentials, a non Atlas host
// and a missing database name. It never contacts the server.
func ValidateURI(uri string) URIReport {
	var r URIReport

	if strings.HasPrefix(uri, "mongodb+srv://") {
		r.pass("correct protocol (mongodb+srv://)")
	} else {
		r.fail("should start with 'mongodb+srv://'", "use the SRV connection string from Atlas")
	}

	u, err := url.Parse(uri)
	if err != nil {
		r.fail(fmt.Sprintf("URL parsing failed: %v", err), "check the connection string format")
		return r
	}

	user := u.User.Username()
	pass, hasPass := u.User.Password()
	if user != "" && hasPass && pass != "" {
		r.pass("username found: %s", user)
		r.pass("password found: %s", strings.Repeat("*", len(pass)))
		if strings.ContainsAny(rawPassword(uri), "@:/?#") {
			r.fail("password contains special characters", "URL-encode special characters in password")
		}
	} else {
		r.fail("missing username or password", "include username:password in the connection string")
	}

	if host := u.Hostname(); host != "" {
		if strings.Contains(host, ".mongodb.net") {
			r.pass("valid Atlas hostname: %s", host)
		} else {
			r.fail("hostname doesn't look like Atlas", "use the connection string from the Atlas dashboard")
		}
	}

	if db := strings.Trim(u.Path, "/"); db != "" {
		r.pass("database specified: %s", db)
	} else {
		r.fail("no database name specified", "add database name: /"+mongodb.DefaultDatabase)
	}

	q := u.Query()
	if q.Get("retryWrites") == "true" {
		r.pass("retry writes enabled")
	}
	if q.Get("w") == "majority" {
		r.pass("write concern set to majority")
	}

	if !r.OK() && user != "" && hasPass {
		fixed := url.URL{
			Scheme:   "mongodb+srv",
			User:     url.UserPassword(user, pass),
			Host:     u.Hostname(),
			Path:     "/" + mongodb.DefaultDatabase,
			RawQuery: "retryWrites=true&w=majority",
		}
		r.SuggestedURI = fixed.String()
	}

	return r
}

// Redact hides the credentials of uri for printing.
func Redact(uri string) string {
	if i := strings.LastIndex(uri, "@"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// rawPassword returns the password exactly as written in uri, before any
// percent-decoding.
func rawPassword(uri string) string {
	_, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return ""
	}
	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return ""
	}
	_, pass, _ := strings.Cut(rest[:at], ":")
	return pass
}
