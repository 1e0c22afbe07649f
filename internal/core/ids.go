package core

import "github.com/google/uuid"

// NewPlayerID mints a fresh, globally unique PlayerID.
func NewPlayerID() PlayerID {
	return PlayerID(uuid.NewString())
}

// NewTeamID mints a fresh, globally unique TeamID.
func NewTeamID() TeamID {
	return TeamID(uuid.NewString())
}

// NewGameID mints a fresh, globally unique GameID.
func NewGameID() GameID {
	return GameID(uuid.NewString())
}

// NewSeriesID mints a fresh, globally unique SeriesID.
func NewSeriesID() SeriesID {
	return SeriesID(uuid.NewString())
}
