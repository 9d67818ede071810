// Package main runs the binomci HTTP server. It exposes the interval
// estimators and the comparison service over JSON and stores reports in the
// configured home directory. See package internal/server for the API.
//
// The default listen address is :8080; override it with --listen or the
// listen key of the YAML config.
package main
