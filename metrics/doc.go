// Package metrics exports BFS rounds and PageRank iterations as Prometheus
// metrics. A Collector plugs into the per-round and per-iteration hooks:
//
//	c, err := metrics.NewCollector(reg)
//	bfs.RunHybrid(g, bfs.WithOnRound(c.ObserveRound))
//	pagerank.Run(g, 0.85, 1e-7, pagerank.WithOnIteration(c.ObserveIteration))
package metrics
