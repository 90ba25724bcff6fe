// Package history journals update runs in a small SQL database.
//
// Each run of the update command, dry runs included, is stored as an
// UpdateRecord with the counts it reported and the backup it produced. The
// journal lives in a local sqlite file by default; pointing history.driver at
// mysql lets several timing stations share one journal.
//
// # Usage
//
//	j, err := history.Open(ctx, cfg.History)
//	if err != nil {
//	    return err
//	}
//	defer j.Close()
//
//	records, err := j.List(ctx, 20)
package history
