// Command lending-demo runs a scripted lending session against an in-memory library and prints
// the outcome: every operation, statistics, the ledger, each holder's notifications and,
// if LENDING_METRICS_DUMP is set, the gathered Prometheus metrics.
//
// Configuration is read from the environment, see config.Config.
package main
