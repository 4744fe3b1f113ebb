package testutils

import "github.com/nacallas/SkidmarkOS-sub001/model"

// Shared player directory entries matching the ids in the sleeperdata
// fixtures. Tests that resolve names through db.GetPlayers can return these.
var (
	JalenHurts   = model.Player{ID: "6904", Name: "Jalen Hurts", Position: model.POS_QB, Team: "PHI"}
	BreeceHall   = model.Player{ID: "8155", Name: "Breece Hall", Position: model.POS_RB, Team: "NYJ"}
	TylerLockett = model.Player{ID: "2374", Name: "Tyler Lockett", Position: model.POS_WR, Team: "SEA"}
	CeeDeeLamb   = model.Player{ID: "6786", Name: "CeeDee Lamb", Position: model.POS_WR, Team: "DAL"}
	TJHockenson  = model.Player{ID: "5844", Name: "T.J. Hockenson", Position: model.POS_TE, Team: "MIN"}
)

// PlayerDirectory maps the shared fixtures by id, the same shape
// db.GetPlayers returns.
func PlayerDirectory() map[string]model.Player {
	return map[string]model.Player{
		JalenHurts.ID:   JalenHurts,
		BreeceHall.ID:   BreeceHall,
		TylerLockett.ID: TylerLockett,
		CeeDeeLamb.ID:   CeeDeeLamb,
		TJHockenson.ID:  TJHockenson,
	}
}
