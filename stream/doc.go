// Package stream implements a push-based streaming dataflow graph: sources
// push values through a DAG of operator nodes to sinks, with backpressure
// carried by completion tokens — a node's Emit does not resolve until every
// reachable downstream consumer has acknowledged the value.
package stream
