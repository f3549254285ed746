// Package session implements the commissioner's owner-assignment workflow:
// building the canonical owner set, claiming raw team names for owners, and
// persisting the resulting alias list.
package session

import (
	"context"
	"sort"
	"strings"

	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/schema"
)

// Step is the wizard stage the session is on.
type Step int

// Wizard steps, in order.
const (
	StepIdentifyOwners Step = iota + 1
	StepAssignTeams
	StepReview
)

// Owner is a canonical identity under construction, with its palette color.
type Owner struct {
	Name  string
	Color string
}

// inverseOp records how to revert a single claim.
type inverseOp struct {
	rawName   string
	prevOwner string
	hadPrev   bool
}

// Session holds the in-memory assignment state for one league. It is not
// safe for concurrent use; each editing flow owns exactly one session.
type Session struct {
	leagueID    string
	owners      []Owner
	assignments map[string]string // rawName -> canonical owner name
	latestNames map[string]struct{}
	activeOwner string
	undoLog     []inverseOp
	step        Step
}

// NewSession creates an empty session for a league.
func NewSession(leagueID string) *Session {
	return &Session{
		leagueID:    leagueID,
		assignments: make(map[string]string),
		latestNames: make(map[string]struct{}),
		step:        StepIdentifyOwners,
	}
}

// LoadOrSeed initializes the session exactly once. When persisted aliases
// exist, owners and assignments are reconstructed from them. Otherwise the
// owner set is seeded from the latest season's raw names, each pre-assigned
// to itself. Either way the session stays on the identify-owners step so the
// commissioner can confirm.
func (s *Session) LoadOrSeed(aliases []schema.OwnerAlias, latestRawNames []string) {
	for _, name := range latestRawNames {
		s.latestNames[name] = struct{}{}
	}

	if len(aliases) > 0 {
		for _, alias := range aliases {
			canonical := strings.TrimSpace(alias.CanonicalName)
			if canonical == "" {
				continue
			}
			if s.findOwner(canonical) == -1 {
				s.owners = append(s.owners, Owner{
					Name:  canonical,
					Color: schema.PaletteColor(len(s.owners)),
				})
			}
			if raw := strings.TrimSpace(alias.OwnerName); raw != "" {
				s.assignments[raw] = canonical
			}
		}
		return
	}

	for _, raw := range latestRawNames {
		if s.AddOwner(raw) {
			s.assignments[raw] = raw
		}
	}
}

// AddOwner adds a canonical owner, assigning the next palette color. Returns
// false for a blank name or a case-insensitive duplicate.
func (s *Session) AddOwner(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || s.findOwner(name) != -1 {
		return false
	}
	s.owners = append(s.owners, Owner{Name: name, Color: schema.PaletteColor(len(s.owners))})
	return true
}

// RemoveOwner deletes an owner and unassigns every raw name that pointed at
// it. Undo entries referencing the owner are pruned so Undo cannot resurrect
// assignments to a deleted owner.
func (s *Session) RemoveOwner(name string) bool {
	idx := s.findOwner(name)
	if idx == -1 {
		return false
	}
	canonical := s.owners[idx].Name
	s.owners = append(s.owners[:idx], s.owners[idx+1:]...)

	for raw, owner := range s.assignments {
		if owner == canonical {
			delete(s.assignments, raw)
		}
	}

	kept := s.undoLog[:0]
	for _, op := range s.undoLog {
		if op.hadPrev && op.prevOwner == canonical {
			continue
		}
		kept = append(kept, op)
	}
	s.undoLog = kept

	if s.activeOwner == canonical {
		s.activeOwner = ""
	}
	return true
}

// RenameOwner renames an owner, rewriting every assignment that pointed at
// the old name. Returns false when the new name is blank or collides
// case-insensitively with a different owner; both owners are left unchanged
// on failure. Renaming an owner to a different casing of itself is allowed.
func (s *Session) RenameOwner(oldName, newName string) bool {
	newName = strings.TrimSpace(newName)
	idx := s.findOwner(oldName)
	if idx == -1 || newName == "" {
		return false
	}
	if other := s.findOwner(newName); other != -1 && other != idx {
		return false
	}

	oldCanonical := s.owners[idx].Name
	s.owners[idx].Name = newName

	for raw, owner := range s.assignments {
		if owner == oldCanonical {
			s.assignments[raw] = newName
		}
	}
	for i := range s.undoLog {
		if s.undoLog[i].hadPrev && s.undoLog[i].prevOwner == oldCanonical {
			s.undoLog[i].prevOwner = newName
		}
	}
	if s.activeOwner == oldCanonical {
		s.activeOwner = newName
	}
	return true
}

// SetActiveOwner selects the owner that subsequent Claim calls assign to.
func (s *Session) SetActiveOwner(name string) bool {
	idx := s.findOwner(name)
	if idx == -1 {
		return false
	}
	s.activeOwner = s.owners[idx].Name
	return true
}

// ActiveOwner returns the currently selected owner name, or empty.
func (s *Session) ActiveOwner() string {
	return s.activeOwner
}

// Claim assigns one raw name to the active owner, recording the inverse
// operation so the claim can be undone.
func (s *Session) Claim(rawName string) bool {
	rawName = strings.TrimSpace(rawName)
	if rawName == "" || s.activeOwner == "" {
		return false
	}

	prev, hadPrev := s.assignments[rawName]
	s.undoLog = append(s.undoLog, inverseOp{rawName: rawName, prevOwner: prev, hadPrev: hadPrev})
	s.assignments[rawName] = s.activeOwner
	return true
}

// Unclaim removes the assignment for one raw name, recording the inverse
// operation. Returns false when the raw name is not assigned.
func (s *Session) Unclaim(rawName string) bool {
	rawName = strings.TrimSpace(rawName)
	prev, hadPrev := s.assignments[rawName]
	if !hadPrev {
		return false
	}
	s.undoLog = append(s.undoLog, inverseOp{rawName: rawName, prevOwner: prev, hadPrev: true})
	delete(s.assignments, rawName)
	return true
}

// Undo reverts the most recent claim or unclaim. There is no redo.
func (s *Session) Undo() bool {
	if len(s.undoLog) == 0 {
		return false
	}
	op := s.undoLog[len(s.undoLog)-1]
	s.undoLog = s.undoLog[:len(s.undoLog)-1]

	if op.hadPrev {
		s.assignments[op.rawName] = op.prevOwner
	} else {
		delete(s.assignments, op.rawName)
	}
	return true
}

// Step returns the wizard step the session is on.
func (s *Session) Step() Step {
	return s.step
}

// SetStep moves the wizard to the given step.
func (s *Session) SetStep(step Step) {
	s.step = step
}

// Owners returns a copy of the owner list in insertion order.
func (s *Session) Owners() []Owner {
	return append([]Owner(nil), s.owners...)
}

// Assignments returns a copy of the raw-name to canonical-name map.
func (s *Session) Assignments() map[string]string {
	out := make(map[string]string, len(s.assignments))
	for raw, owner := range s.assignments {
		out[raw] = owner
	}
	return out
}

// Progress reports how many of the given raw names have been claimed.
func (s *Session) Progress(rawNames []string) (claimed, total int) {
	for _, raw := range rawNames {
		if _, ok := s.assignments[raw]; ok {
			claimed++
		}
	}
	return claimed, len(rawNames)
}

// BuildAliases produces the alias batch for persistence: one alias per
// assignment sorted by raw name, plus a synthetic self-referencing alias for
// any owner not covered by an assignment. An owner is active when at least
// one of its claimed raw names appears in the latest season.
func (s *Session) BuildAliases() []schema.OwnerAlias {
	covered := make(map[string]struct{}, len(s.owners))

	rawNames := make([]string, 0, len(s.assignments))
	for raw := range s.assignments {
		rawNames = append(rawNames, raw)
	}
	sort.Strings(rawNames)

	aliases := make([]schema.OwnerAlias, 0, len(rawNames))
	for _, raw := range rawNames {
		owner := s.assignments[raw]
		covered[owner] = struct{}{}
		aliases = append(aliases, schema.OwnerAlias{
			OwnerName:     raw,
			CanonicalName: owner,
			IsActive:      s.isActive(owner),
		})
	}

	for _, owner := range s.owners {
		if _, ok := covered[owner.Name]; ok {
			continue
		}
		aliases = append(aliases, schema.OwnerAlias{
			OwnerName:     owner.Name,
			CanonicalName: owner.Name,
			IsActive:      false,
		})
	}
	return aliases
}

// Save persists the alias batch to the backend as one atomic write. On
// failure the error is returned and the session state is left untouched so
// the commissioner can retry.
func (s *Session) Save(ctx context.Context, client contract.LeagueClient) error {
	return client.SaveOwnerAliases(ctx, s.leagueID, s.BuildAliases())
}

// isActive reports whether any of the owner's claimed raw names belongs to
// the latest season.
func (s *Session) isActive(owner string) bool {
	for raw, assigned := range s.assignments {
		if assigned != owner {
			continue
		}
		if _, ok := s.latestNames[raw]; ok {
			return true
		}
	}
	return false
}

// findOwner locates an owner by case-insensitive name, or returns -1.
func (s *Session) findOwner(name string) int {
	for i, owner := range s.owners {
		if strings.EqualFold(owner.Name, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}
