// Package builder generates deterministic road networks for tests,
// benchmarks and the CLI's "generate" command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildNetwork: new network + constructors applied in order.
//     – Apply:        constructors applied to an existing network.
//   - Topologies (Constructor factories):
//     – Path, Ring, Wheel, Star, Grid, RandomSparse.
//   - Configuration (BuilderOption):
//     – WithOrigin, WithSpacing: where intersections are laid out.
//     – WithJitter + WithSeed/WithRand: random offsets for unequal lengths.
//     – WithIDScheme / WithIDPrefix: segment IDs; IDScheme builds the
//       decimal, alnum (base 36) and excel (A..Z, AA) generators.
//
// Guarantees:
//
//   - Segment IDs are issued from one counter per build, so composed
//     constructors never collide (s0, s1, ... by default).
//   - Invalid option values panic in the option constructor; invalid
//     constructor parameters return sentinel errors (errors.Is).
//   - Same options, seed and constructor order ⇒ identical networks.
//
// Example:
//
//	nw, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithSpacing(50), builder.WithSeed(1), builder.WithJitter(10)},
//		builder.Grid(4, 5),
//	)
package builder
