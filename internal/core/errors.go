package core

import "fmt"

// NotFoundError represents a resource that could not be found.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) error {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*NotFoundError)
	return ok
}

// InvalidTeamError is returned when a Team fails its player/starter
// invariants (|players|=15, |starters|=5, starters ⊆ players).
type InvalidTeamError struct {
	TeamID TeamID
	Reason string
}

func (e *InvalidTeamError) Error() string {
	return fmt.Sprintf("invalid team %s: %s", e.TeamID, e.Reason)
}

// NewInvalidTeamError creates a new InvalidTeamError.
func NewInvalidTeamError(teamID TeamID, reason string) error {
	return &InvalidTeamError{TeamID: teamID, Reason: reason}
}

// IsInvalidTeam checks if an error is an InvalidTeamError.
func IsInvalidTeam(err error) bool {
	_, ok := err.(*InvalidTeamError)
	return ok
}

// InvalidRotationError is returned when a RotationConfig fails its
// invariants: minutes that don't sum correctly, an empty slot, or a
// duplicate (slot, depth) pair.
type InvalidRotationError struct {
	TeamID TeamID
	Reason string
}

func (e *InvalidRotationError) Error() string {
	return fmt.Sprintf("invalid rotation for team %s: %s", e.TeamID, e.Reason)
}

// NewInvalidRotationError creates a new InvalidRotationError.
func NewInvalidRotationError(teamID TeamID, reason string) error {
	return &InvalidRotationError{TeamID: teamID, Reason: reason}
}

// IsInvalidRotation checks if an error is an InvalidRotationError.
func IsInvalidRotation(err error) bool {
	_, ok := err.(*InvalidRotationError)
	return ok
}

// ScheduleInfeasibleError is returned when the schedule generator cannot
// satisfy the configured games-per-team target.
type ScheduleInfeasibleError struct {
	Teams        int
	GamesPerTeam int
	Reason       string
}

func (e *ScheduleInfeasibleError) Error() string {
	return fmt.Sprintf("schedule infeasible for %d teams at %d games/team: %s", e.Teams, e.GamesPerTeam, e.Reason)
}

// NewScheduleInfeasibleError creates a new ScheduleInfeasibleError.
func NewScheduleInfeasibleError(teams, gamesPerTeam int, reason string) error {
	return &ScheduleInfeasibleError{Teams: teams, GamesPerTeam: gamesPerTeam, Reason: reason}
}

// IsScheduleInfeasible checks if an error is a ScheduleInfeasibleError.
func IsScheduleInfeasible(err error) bool {
	_, ok := err.(*ScheduleInfeasibleError)
	return ok
}

// InvalidSeedingError is returned when play-in generation is attempted
// without all of seeds 7..10 present in a conference.
type InvalidSeedingError struct {
	Conference Conference
	Reason     string
}

func (e *InvalidSeedingError) Error() string {
	return fmt.Sprintf("invalid seeding for %s: %s", e.Conference, e.Reason)
}

// NewInvalidSeedingError creates a new InvalidSeedingError.
func NewInvalidSeedingError(conference Conference, reason string) error {
	return &InvalidSeedingError{Conference: conference, Reason: reason}
}

// IsInvalidSeeding checks if an error is an InvalidSeedingError.
func IsInvalidSeeding(err error) bool {
	_, ok := err.(*InvalidSeedingError)
	return ok
}

// NothingToSimulateError is returned when a simulate call finds no eligible
// game for the requested team.
type NothingToSimulateError struct {
	TeamID TeamID
	Reason string
}

func (e *NothingToSimulateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("nothing to simulate for team %s: %s", e.TeamID, e.Reason)
	}
	return fmt.Sprintf("nothing to simulate for team %s", e.TeamID)
}

// NewNothingToSimulateError creates a new NothingToSimulateError.
func NewNothingToSimulateError(teamID TeamID, reason string) error {
	return &NothingToSimulateError{TeamID: teamID, Reason: reason}
}

// IsNothingToSimulate checks if an error is a NothingToSimulateError.
func IsNothingToSimulate(err error) bool {
	_, ok := err.(*NothingToSimulateError)
	return ok
}

// StorageFailureError wraps an underlying save-store backend failure (I/O,
// connection, driver error).
type StorageFailureError struct {
	Op  string
	Err error
}

func (e *StorageFailureError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

// Unwrap allows errors.Is/As to reach the underlying driver error.
func (e *StorageFailureError) Unwrap() error {
	return e.Err
}

// NewStorageFailureError creates a new StorageFailureError.
func NewStorageFailureError(op string, err error) error {
	return &StorageFailureError{Op: op, Err: err}
}

// IsStorageFailure checks if an error is a StorageFailureError.
func IsStorageFailure(err error) bool {
	_, ok := err.(*StorageFailureError)
	return ok
}

// SchemaMismatchError is returned when a saved record's schema version
// cannot be read or migrated by the running binary.
type SchemaMismatchError struct {
	SaveName string
	Found    int
	Want     int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("save %q has schema version %d, expected %d", e.SaveName, e.Found, e.Want)
}

// NewSchemaMismatchError creates a new SchemaMismatchError.
func NewSchemaMismatchError(saveName string, found, want int) error {
	return &SchemaMismatchError{SaveName: saveName, Found: found, Want: want}
}

// IsSchemaMismatch checks if an error is a SchemaMismatchError.
func IsSchemaMismatch(err error) bool {
	_, ok := err.(*SchemaMismatchError)
	return ok
}
