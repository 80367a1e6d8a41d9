package importer

import "strings"

// Truncation limits for the derived description fields.
const (
	shortDescriptionLimit = 200
	metaDescriptionLimit  = 160
)

// Resolved carries a row's database-ready derived values: lookup ids for the
// free-text names and the slug and truncated descriptions.
type Resolved struct {
	Slug             string
	ShortDescription string
	MetaDescription  string
	RingStyleIDs     [5]*int
	StoneShapeID     *int
	StoneTypeID      *int
}

// ResolveRow maps a row's free-text names onto lookup ids and derives the
// slug and description fields. Unmapped or absent names resolve to nil;
// ring style slots resolve independently and keep their positions. The
// function is pure: it only reads the lookups.
func ResolveRow(row ProductRow, lk *Lookups) Resolved {
	res := Resolved{
		Slug:             Slugify(deref(row.Name)),
		ShortDescription: truncateRunes(deref(row.Description), shortDescriptionLimit),
		MetaDescription:  truncateRunes(deref(row.Description), metaDescriptionLimit),
		StoneShapeID:     lookupID(lk.StoneShapes, row.StoneShape),
		StoneTypeID:      lookupID(lk.StoneTypes, row.StoneType),
	}
	for i, name := range row.RingStyles {
		res.RingStyleIDs[i] = lookupID(lk.RingStyles, name)
	}
	return res
}

// Slugify derives the URL slug from a product name: lowercase, spaces to
// hyphens, apostrophes dropped. Collisions are not de-duplicated here.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ReplaceAll(s, "'", "")
}

// lookupID resolves an optional name against a lookup map. Unknown names are
// silently dropped to nil; absence is not an error.
func lookupID(m map[string]int, name *string) *int {
	if name == nil {
		return nil
	}
	id, ok := m[*name]
	if !ok {
		return nil
	}
	return &id
}

// truncateRunes cuts s to at most limit runes. Descriptions may contain
// multi-byte characters, so byte slicing would split them.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// deref returns the value of an optional string, or "" when nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
