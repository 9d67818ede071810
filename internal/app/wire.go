package app

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"binomci/internal/domain"
	"binomci/internal/posterior"
	"binomci/internal/remote"
	comparesvc "binomci/internal/services/compare"
	"binomci/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI and server.
type Wire struct {
	Config   Config
	Log      *slog.Logger
	Store    *store.FileStore
	Datasets domain.DatasetStore
	Reports  domain.ReportStore
	Sampler  domain.PosteriorSampler
	Compare  domain.CompareService
	Remote   *remote.Client // nil unless Config.Server is set
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut, or
// stderr when nil.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logOut == nil {
		logOut = os.Stderr
	}
	log := NewLogger(cfg.LogLevel, logOut)

	fs := store.NewFileStore(cfg.Home)
	sampler := posterior.NewConjugate()
	svc := comparesvc.New(sampler, fs, log)

	var rc *remote.Client
	if cfg.Server != "" {
		rc = remote.New(cfg.Server, http.DefaultClient)
	}

	return &Wire{
		Config:   cfg,
		Log:      log,
		Store:    fs,
		Datasets: fs,
		Reports:  fs,
		Sampler:  sampler,
		Compare:  svc,
		Remote:   rc,
	}, nil
}
