package helper

import (
	"strings"

	"atletku_backend/internals/constants"
)

// ParseSportsScope membaca query "sports" (comma-separated) menjadi scope.
// Kosong = tanpa filter (dianggap wildcard oleh pemanggil).
func ParseSportsScope(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SportsScopeAllows — true jika scope reviewer mengizinkan atlet dengan daftar sports tsb.
// Scope kosong atau mengandung sentinel "all" = wildcard.
// Pencocokan case-insensitive + trim, konsisten dengan normalisasi dashboard.
func SportsScopeAllows(scope []string, athleteSports []string) bool {
	if len(scope) == 0 {
		return true
	}
	for _, s := range scope {
		if strings.EqualFold(strings.TrimSpace(s), constants.SportScopeAll) {
			return true
		}
	}
	for _, s := range scope {
		for _, a := range athleteSports {
			if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(a)) {
				return true
			}
		}
	}
	return false
}
