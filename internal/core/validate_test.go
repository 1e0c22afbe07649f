package core

import "testing"

func fifteenPlayers() []Player {
	players := make([]Player, RosterSize)
	for i := range players {
		players[i] = Player{ID: NewPlayerID(), Name: "Player"}
	}
	return players
}

func validTeam() Team {
	players := fifteenPlayers()
	starters := make([]PlayerID, StarterCount)
	for i := 0; i < StarterCount; i++ {
		starters[i] = players[i].ID
	}
	return Team{ID: NewTeamID(), City: "Ashford", Name: "Comets", Players: players, Starters: starters}
}

func TestValidateTeamRejectsWrongRosterSize(t *testing.T) {
	team := validTeam()
	team.Players = team.Players[:10]
	if err := ValidateTeam(team); !IsInvalidTeam(err) {
		t.Fatalf("expected InvalidTeamError, got %v", err)
	}
}

func TestValidateTeamRejectsStarterNotOnRoster(t *testing.T) {
	team := validTeam()
	team.Starters[0] = NewPlayerID()
	if err := ValidateTeam(team); !IsInvalidTeam(err) {
		t.Fatalf("expected InvalidTeamError, got %v", err)
	}
}

func validRotation(team Team) RotationConfig {
	minutes := map[PlayerID]int{}
	depthChart := make([]DepthChartEntry, 0, StarterCount)
	for i, slot := range RotationSlots {
		minutes[team.Starters[i]] = 48
		depthChart = append(depthChart, DepthChartEntry{PlayerID: team.Starters[i], Slot: slot, Depth: 1})
	}
	return RotationConfig{RotationSize: 5, Minutes: minutes, DepthChart: depthChart}
}

func TestValidateRotationAcceptsFiveStarterDefault(t *testing.T) {
	team := validTeam()
	rot := validRotation(team)
	if err := ValidateRotation(team, rot); err != nil {
		t.Fatalf("expected valid rotation, got %v", err)
	}
}

func TestValidateRotationRejectsMinutesNotSumming240(t *testing.T) {
	team := validTeam()
	rot := validRotation(team)
	rot.Minutes[team.Starters[0]] = 47
	if err := ValidateRotation(team, rot); !IsInvalidRotation(err) {
		t.Fatalf("expected InvalidRotationError, got %v", err)
	}
}

func TestValidateRotationRejectsDepthOneMismatchWithStarters(t *testing.T) {
	team := validTeam()
	rot := validRotation(team)
	rot.DepthChart[0].PlayerID = team.Players[10].ID
	if err := ValidateRotation(team, rot); !IsInvalidRotation(err) {
		t.Fatalf("expected InvalidRotationError, got %v", err)
	}
}

func TestValidateRotationRejectsMissingSlot(t *testing.T) {
	team := validTeam()
	rot := validRotation(team)
	rot.DepthChart = rot.DepthChart[:4]
	rot.Minutes = map[PlayerID]int{}
	for i := 0; i < 4; i++ {
		rot.Minutes[team.Starters[i]] = 60
	}
	if err := ValidateRotation(team, rot); !IsInvalidRotation(err) {
		t.Fatalf("expected InvalidRotationError, got %v", err)
	}
}
