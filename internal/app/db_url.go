package app

import (
	"net/url"
	"strings"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// normalizeDBURL optionally appends the pooler compatibility flag. Some
// managed poolers reject prepared statements with binary results.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}
	if query := parsed.Query(); query.Get(preparedBinaryParam) == "" {
		query.Set(preparedBinaryParam, "yes")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

// dbNameFromURL extracts the database name for log and telemetry labels.
// It understands both URL-style DSNs (postgres://host/name) and the
// key=value form (dbname=name).
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if parsed, err := url.Parse(trimmed); err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		name, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(strings.TrimSpace(name), `"'`); name != "" {
			return name
		}
	}
	return ""
}
