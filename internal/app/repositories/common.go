package repositories

import "strings"

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// likePrefix escapes LIKE wildcards in s and appends %.
func likePrefix(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s) + "%"
}

// likeContains escapes LIKE wildcards in s and wraps it in %.
func likeContains(s string) string {
	return "%" + strings.TrimSuffix(likePrefix(s), "%") + "%"
}

// chunk splits n items into [start, end) ranges of at most size.
func chunk(n, size int) [][2]int {
	var out [][2]int
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
