package helper

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const (
	DefaultSlugMaxLen = 120
	emptySlug         = "item"
)

// Slugify lowercases s, folds accents ("Crème" -> "creme") and joins the
// remaining ASCII letter/digit runs with single hyphens.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}

	var b strings.Builder
	gap := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}

	out := b.String()
	if len(out) > maxLen {
		out = strings.TrimRight(out[:maxLen], "-")
	}
	if out == "" {
		return emptySlug
	}
	return out
}

// EnsureUniqueSlugCI returns base when no row of table has it in column
// (ignoring case), otherwise the first free base-2, base-3, ... that fits in
// maxLen. scope narrows the rows compared, e.g. ExcludeID for an update.
func EnsureUniqueSlugCI(
	ctx context.Context,
	db *gorm.DB,
	table, column, base string,
	scope func(*gorm.DB) *gorm.DB,
	maxLen int,
) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	base = strings.ToLower(base)

	q := db.WithContext(ctx).Table(table)
	if scope != nil {
		q = scope(q)
	}
	var used []string
	expr := fmt.Sprintf("LOWER(%s)", column)
	if err := q.Where(expr+" LIKE ?", base+"%").Pluck(expr, &used).Error; err != nil {
		return "", err
	}

	taken := make(map[string]struct{}, len(used))
	for _, u := range used {
		taken[u] = struct{}{}
	}
	if _, ok := taken[base]; !ok {
		return base, nil
	}
	for n := 2; ; n++ {
		candidate := withSuffix(base, "-"+strconv.Itoa(n), maxLen)
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}
}

// withSuffix cuts base so base+suffix stays within maxLen.
func withSuffix(base, suffix string, maxLen int) string {
	room := maxLen - len(suffix)
	if room < 1 {
		return emptySlug[:1] + suffix
	}
	if len(base) > room {
		base = strings.TrimRight(base[:room], "-")
	}
	if base == "" {
		base = emptySlug[:1]
	}
	return base + suffix
}

// IsTakenCI reports whether value already exists in table.column, ignoring case.
func IsTakenCI(
	ctx context.Context,
	db *gorm.DB,
	table, column, value string,
	scope func(*gorm.DB) *gorm.DB,
) (bool, error) {
	q := db.WithContext(ctx).Table(table)
	if scope != nil {
		q = scope(q)
	}
	var count int64
	err := q.Where(fmt.Sprintf("LOWER(%s) = ?", column), strings.ToLower(strings.TrimSpace(value))).
		Count(&count).Error
	return count > 0, err
}
