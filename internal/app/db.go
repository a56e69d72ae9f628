package app

import (
	"net/url"
	"regexp"
	"strings"
)

// tracedQueryLimit keeps statement attributes small enough for the span
// exporter.
const tracedQueryLimit = 512

var collapseSpaces = regexp.MustCompile(`\s+`)

// connString returns the DSN handed to the driver. lib/pq's binary
// prepared-result path breaks behind some connection poolers, so config
// can force it off.
func connString(dsn string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return dsn
	}

	u, err := url.Parse(dsn)
	if err != nil || u == nil {
		return dsn
	}

	q := u.Query()
	if q.Get("disable_prepared_binary_result") != "" {
		return dsn
	}
	q.Set("disable_prepared_binary_result", "yes")
	u.RawQuery = q.Encode()

	return u.String()
}

// databaseName extracts the database name from a URL-style or key=value
// DSN so spans and logs can name the database without exposing
// credentials.
func databaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)

	if u, err := url.Parse(dsn); err == nil && u != nil && u.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(u.Path, "/")); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(dsn) {
		value, ok := strings.CutPrefix(field, "dbname=")
		if !ok {
			continue
		}
		if name := strings.Trim(strings.TrimSpace(value), `"'`); name != "" {
			return name
		}
	}

	return ""
}

// traceQuery collapses whitespace and truncates long statements before
// they are attached to a span.
func traceQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	flat := collapseSpaces.ReplaceAllString(query, " ")
	if len(flat) > tracedQueryLimit {
		return flat[:tracedQueryLimit] + "..."
	}
	return flat
}
