// Package reconcile merges races extracted from a GCPV export into the races
// already stored in a FinishLynx event database.
//
// The engine is pure: Merge never touches the filesystem and never mutates its
// inputs. It returns a ReconcilePlan holding the merged race list, one Action
// per race that is added or rewritten, and a PlanSummary with the counts that
// callers report back to the user.
//
// # Matching
//
// Races are matched by race number. A source race with no existing
// counterpart is added. An existing race is updated when its event name, its
// lap count or its skater roster differs from the source; rosters are compared
// lane by lane after sorting, so the order skaters appear in either file does
// not matter. Existing races the source does not mention are kept as they are
// and counted as unchanged.
//
// # Usage Example
//
//	plan := reconcile.Merge(existing, incoming, reconcile.ReconcileOptions{
//	    TrimSuffixes: []string{"male", "female"},
//	})
//	fmt.Println(plan.Summary.Added, plan.Summary.Updated)
package reconcile
