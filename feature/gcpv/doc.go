// Package gcpv extracts races from GCPV race-day CSV exports.
//
// GCPV exports have no header row and no fixed column layout. Race headers and
// skater lines are recognised by keyword sentinels found at any offset in a row:
//
//   - "Race" followed by the race number (rows without one are ignored)
//   - "Event :" followed by the race parameters and the race group
//   - "Stage :" followed by the race stage
//   - "Lane", "Skaters", "Club" followed by lane, "ID LASTNAME, FIRSTNAME" and club
//
// A header and a skater may share one row; every probe runs on every row.
//
// # Usage
//
//	races, err := gcpv.ParseFiles("day1.csv")
//	for _, r := range races {
//	    fmt.Println(r.Number, r.EventName(cfg.Races.TrimSuffixes))
//	}
package gcpv
