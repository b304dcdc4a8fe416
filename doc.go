// Package roadnet is an in-memory road network engine: segments are
// polylines on an integer grid, intersections are where they end, and the
// engine answers route, cycle and simplification queries over them.
//
// What is inside?
//
//	geo/         coordinates, truncated Euclidean distances, coordinate order
//	network/     segment and intersection registries, kept in sync
//	dfs/         any route (depth-first) and cycle detection
//	bfs/         route with the fewest segments
//	dijkstra/    route with the least total length
//	trim/        minimum spanning forest (Kruskal or Prim) and Trim
//	places/      named points of interest with nearest-first lookups
//	areas/       named areas nested in a containment hierarchy
//	engine/      one facade over all of the above, with sentinel results
//	builder/     deterministic networks: path, ring, wheel, star, grid, random
//	config/      YAML and MessagePack network files
//	cmd/roadnet  command-line front end
//
// Quick ASCII example:
//
//	(0,0)───ab───(3,0)
//	    \          │
//	     ac        bc
//	       \       │
//	        ───(3,4)
//
// is a triangle of three segments; the shortest route from (0,0) to (3,4)
// is "ac" with length 5, and Trim removes "ac" because "ab"+"bc" already
// connect its ends.
//
//	go install github.com/katalvlaran/roadnet/cmd/roadnet@latest
package roadnet
