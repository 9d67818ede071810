// Package compare runs the frequentist and Bayesian interval procedures on
// one dataset and records the outcome as a domain.Report.
//
// Reports are identified by a fingerprint of their inputs (data, level,
// prior, sampler settings), so rerunning the same comparison overwrites the
// same stored report.
package compare
