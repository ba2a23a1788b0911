package shortcuts

// FindConflicts scans all live shortcuts in registration order and reports
// pairs whose effective bindings are canonically equal. One O(n) pass: the
// first shortcut seen with a binding claims it, and every later shortcut with
// the same binding is reported against that same first id. A three-way tie
// therefore yields two conflicts, both naming the first-seen id — enough for
// the panel's "conflicts with X" warning without pairwise expansion.
func (r *Registry) FindConflicts() []Conflict {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conflicts := []Conflict{}
	firstSeen := make(map[string]string, len(r.order))

	for _, id := range r.order {
		binding, ok := r.effectiveBindingLocked(id)
		if !ok {
			continue
		}
		canonical := binding.Canonical()
		if firstID, taken := firstSeen[canonical]; taken {
			conflicts = append(conflicts, Conflict{
				ShortcutID:    id,
				ConflictingID: firstID,
				Binding:       binding,
			})
			continue
		}
		firstSeen[canonical] = id
	}
	return conflicts
}
