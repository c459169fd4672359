/*
Package batch compiles many casts at once.

A Processor fans requests out over a bounded pool (see WithMaxWorkers), gives
every request its own deadline (see WithTimeout) and collects results in
input order. One failing cast never aborts the others: its error is recorded
against its index and counted.

Metrics are exported through Prometheus when a registry is supplied:

  - najia_compile_total{outcome}: Compilations by outcome (ok, invalid, timeout, error).
  - najia_compile_duration_seconds: Latency of single compilations.
  - najia_batch_size: Number of requests per batch.
*/
package batch
