package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// pathID parses a positive integer path variable, writing 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// queryID returns nil when the parameter is absent.
func queryID(r *http.Request, names ...string) (*int64, error) {
	for _, name := range names {
		raw := strings.TrimSpace(r.URL.Query().Get(name))
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid %s", name)
		}
		return &id, nil
	}
	return nil, nil
}

// queryList accepts both ?status=a,b and ?status=a&status=b, dropping blanks.
func queryList(r *http.Request, name string) []string {
	var values []string
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			if v := strings.TrimSpace(part); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

func queryBool(r *http.Request, name string, defaultValue bool) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return defaultValue
	}
	return value
}

func queryInt(r *http.Request, name string, defaultValue, max int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || value < 1 {
		return defaultValue
	}
	if value > max {
		return max
	}
	return value
}
