package shared

import (
	"net"
	"net/http"
	"strconv"
	"strings"
)

// ClientIP extracts the caller address, preferring X-Forwarded-For when
// the service sits behind a proxy.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ParseMonthYear reads month and year query parameters and checks the
// month is a real calendar month.
func ParseMonthYear(r *http.Request) (int, int, bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1900 || year > 2200 {
		return 0, 0, false
	}
	return month, year, true
}
