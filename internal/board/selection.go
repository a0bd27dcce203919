// Package board holds the derived-state logic behind the project board
// header: the team/project selection state and the pure progress
// aggregation over the task collection. It has no I/O and no knowledge
// of rendering or storage.
package board

// AllID is the pseudo-identifier standing in for "all teams" or "all
// projects". It shares the id domain with real teams and participates
// in the expanded set like any other id.
const AllID = "all"

// Selection is the session-scoped selection and expansion state for the
// board header. It is created at model construction, mutated only
// through SelectTeam and SelectProject, and discarded with the session.
// Callers pass it by pointer; there is no package-level instance.
type Selection struct {
	TeamID    string
	ProjectID string
	expanded  map[string]bool
}

// NewSelection returns the initial state: everything selected, only the
// "all" pseudo-team pre-expanded.
func NewSelection() *Selection {
	return &Selection{
		TeamID:    AllID,
		ProjectID: AllID,
		expanded:  map[string]bool{AllID: true},
	}
}

// SelectTeam selects teamID, resets the project selection and toggles
// the team's project-row expansion. The project reset is unconditional:
// a previously selected project may not belong to the new team. The
// toggle applies on every call, including repeated calls on the already
// selected team; the team chip doubles as the expand/collapse control.
func (s *Selection) SelectTeam(teamID string) {
	s.TeamID = teamID
	s.ProjectID = AllID
	if s.expanded[teamID] {
		delete(s.expanded, teamID)
	} else {
		s.expanded[teamID] = true
	}
}

// SelectProject selects projectID. Team selection and expansion state
// are left alone. Unknown ids are accepted; they simply produce empty
// filtered results downstream.
func (s *Selection) SelectProject(projectID string) {
	s.ProjectID = projectID
}

// IsExpanded reports whether teamID's project row is expanded.
func (s *Selection) IsExpanded(teamID string) bool {
	return s.expanded[teamID]
}

// ProjectRowVisible reports whether the project row for the currently
// selected team should be rendered. The "all" pseudo-team's row is
// always visible regardless of its expansion flag; concrete teams are
// gated strictly by theirs.
func (s *Selection) ProjectRowVisible() bool {
	return s.TeamID == AllID || s.expanded[s.TeamID]
}
