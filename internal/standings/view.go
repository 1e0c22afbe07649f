package standings

import "hoopsleague.dev/league/internal/core"

// ConferenceTable is one conference's seeded standings, ready for display
// or JSON serving.
type ConferenceTable struct {
	Conference core.Conference `json:"conference"`
	Rows       []Row           `json:"rows"`
}

// Row is one team's seeded standing-table entry.
type Row struct {
	Seed     int         `json:"seed"`
	TeamID   core.TeamID `json:"teamId"`
	TeamName string      `json:"teamName"`
	Wins     int         `json:"wins"`
	Losses   int         `json:"losses"`
	WinPct   float64     `json:"winPct"`
}

// View is the cacheable standings projection served by both the CLI's
// `league status` and the HTTP standings endpoint.
type View struct {
	East ConferenceTable `json:"east"`
	West ConferenceTable `json:"west"`
}

// BuildView assembles a View from games and the league's conference/name
// lookups.
func BuildView(games []core.Game, conferences map[core.TeamID]core.Conference, nameOf TeamNameLookup) View {
	records := ComputeRecords(games)
	seeds := Seeding(records, conferences, nameOf)

	view := View{
		East: ConferenceTable{Conference: core.ConferenceEast},
		West: ConferenceTable{Conference: core.ConferenceWest},
	}
	for id, conf := range conferences {
		r := records[id]
		row := Row{
			Seed:     seeds[id],
			TeamID:   id,
			TeamName: nameOf(id),
			Wins:     r.Wins,
			Losses:   r.Losses,
			WinPct:   r.WinPct(),
		}
		switch conf {
		case core.ConferenceEast:
			view.East.Rows = append(view.East.Rows, row)
		case core.ConferenceWest:
			view.West.Rows = append(view.West.Rows, row)
		}
	}
	sortBySeed(view.East.Rows)
	sortBySeed(view.West.Rows)
	return view
}

func sortBySeed(rows []Row) {
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && rows[j].Seed < rows[j-1].Seed; j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}
}
