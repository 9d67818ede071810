// Package commands defines the binomci CLI and wires dependencies for subcommands.
//
// Commands
//
//   - generate   Draw an overdispersed synthetic dataset and optionally save it
//   - estimate   Print one interval (wald, wilson, mean-t or posterior)
//   - posterior  Sample the Beta posterior and print a credible interval
//   - compare    Run every method, print a table and store the report
//   - show       Print a stored report
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the dependency graph (store, sampler, comparison service, optional remote
// client) before any subcommand runs. When --server is set, estimate,
// compare and show go through the HTTP API instead of running locally.
package commands
