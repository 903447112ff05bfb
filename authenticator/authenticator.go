package authenticator

// AdminSet holds the fixed set of administrator identifiers configured
// at process start. Membership in this set is the sole authorization
// check for administrative operations; the set is immutable for the
// process lifetime.
type AdminSet struct {
	ids map[string]struct{}
}

// NewAdminSet creates an admin set from the configured identifiers
func NewAdminSet(ids []string) *AdminSet {
	set := &AdminSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		set.ids[id] = struct{}{}
	}
	return set
}

// IsAdmin reports whether the given identifier belongs to the admin set
func (a *AdminSet) IsAdmin(id string) bool {
	_, ok := a.ids[id]
	return ok
}

// Size returns the number of configured administrators
func (a *AdminSet) Size() int {
	return len(a.ids)
}
