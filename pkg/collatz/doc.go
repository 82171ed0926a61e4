// Package collatz computes Collatz (3n+1) trajectories as a lazily pulled
// sequence of status snapshots.
//
// A Generator owns a single Status and advances it one step per call to
// Next. The terminal value 1 is reported exactly once, as its own snapshot
// with Finished set, after which the generator stays exhausted:
//
//	g, err := collatz.New[uint64](9)
//	if err != nil {
//		return err
//	}
//	for s, ok := g.Next(); ok; s, ok = g.Next() {
//		fmt.Println(s.N, s.Value, s.Highest)
//	}
//	if err := g.Err(); err != nil {
//		return err
//	}
//
// The implementation is generic over the unsigned integer width. Steps
// that would not fit the chosen width stop the generator with an
// *OverflowError instead of wrapping.
package collatz
