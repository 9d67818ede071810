package commands

import (
	"bytes"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binomci/internal/app"
	"binomci/internal/domain"
	"binomci/internal/server"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEstimate_Inline(t *testing.T) {
	home := t.TempDir()
	out, err := run(t, "--home", home, "estimate", "--successes", "5", "--trials", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "wald 95%: point=0.5000 lower=0.1901 upper=0.8099")
	assert.NotContains(t, out, "warning")
}

func TestEstimate_WarnsOnInadmissibleWald(t *testing.T) {
	home := t.TempDir()
	out, err := run(t, "--home", home, "estimate", "--successes", "1", "--trials", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "warning: interval extends outside [0, 1]")

	out, err = run(t, "--home", home, "estimate", "--successes", "1", "--trials", "20", "--method", "wilson")
	require.NoError(t, err)
	assert.NotContains(t, out, "warning")
}

func TestEstimate_Errors(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, "--home", home, "estimate", "--successes", "5", "--trials", "0")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = run(t, "--home", home, "estimate", "--successes", "5", "--trials", "10", "--method", "bogus")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = run(t, "--home", home, "estimate")
	require.Error(t, err, "one of --dataset or --successes is required")

	_, err = run(t, "--home", home, "--level", "1", "estimate", "--successes", "5", "--trials", "10")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGenerateThenCompareThenShow(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, "--home", home, "generate", "--replicates", "10", "--trials", "10", "--seed", "4", "--name", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, `saved dataset "demo"`)

	out, err = run(t, "--home", home, "compare", "--dataset", "demo", "--draws", "500", "--burn-in", "10")
	require.NoError(t, err)
	for _, m := range []string{"wald", "wilson", "mean-t", "posterior"} {
		assert.Contains(t, out, m)
	}

	id := regexp.MustCompile(`report ([0-9a-f]+)`).FindStringSubmatch(out)
	require.Len(t, id, 2)

	shown, err := run(t, "--home", home, "show", id[1])
	require.NoError(t, err)
	assert.Equal(t, out, shown)

	_, err = run(t, "--home", home, "show", "0000")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPosterior_Inline(t *testing.T) {
	out, err := run(t, "--home", t.TempDir(), "posterior", "--successes", "0,0,1", "--trials", "10", "--alpha", "2", "--draws", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "prior:   Beta(2, 1)")
	assert.Contains(t, out, "draws:   300")
	assert.Contains(t, out, "95% credible interval")
}

func TestEstimate_ViaServer(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Home = t.TempDir()
	w, err := app.NewWire(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	srv := httptest.NewServer(server.New(w.Compare, w.Reports, w.Log, cfg.Prior, cfg.Sampler).Handler())
	defer srv.Close()

	out, err := run(t, "--home", t.TempDir(), "--server", srv.URL, "estimate", "--successes", "5", "--trials", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "lower=0.1901 upper=0.8099")

	out, err = run(t, "--home", t.TempDir(), "--server", srv.URL, "compare", "--successes", "2,8", "--trials", "10", "--draws", "200")
	require.NoError(t, err)
	id := regexp.MustCompile(`report ([0-9a-f]+)`).FindStringSubmatch(out)
	require.Len(t, id, 2)

	shown, err := run(t, "--home", t.TempDir(), "--server", srv.URL, "show", id[1])
	require.NoError(t, err)
	assert.Equal(t, out, shown)
}

func TestEstimate_ViaServerSendsPrior(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Home = t.TempDir()
	w, err := app.NewWire(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	srv := httptest.NewServer(server.New(w.Compare, w.Reports, w.Log, cfg.Prior, cfg.Sampler).Handler())
	defer srv.Close()

	out, err := run(t, "--home", t.TempDir(), "--server", srv.URL,
		"estimate", "--successes", "5", "--trials", "10", "--method", "posterior",
		"--alpha", "50", "--beta", "1", "--draws", "500")
	require.NoError(t, err)

	m := regexp.MustCompile(`point=([0-9.]+)`).FindStringSubmatch(out)
	require.Len(t, m, 2)
	point, err := strconv.ParseFloat(m[1], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, point, 0.05, "server must sample with the Beta(50, 1) prior")

	_, err = run(t, "--home", t.TempDir(), "--server", srv.URL,
		"estimate", "--successes", "5", "--trials", "10", "--method", "posterior", "--draws", "2000000")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
