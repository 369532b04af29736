package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/seblak-bujangan/seblak/internal/branding"
	"github.com/seblak-bujangan/seblak/internal/config"
	"github.com/seblak-bujangan/seblak/internal/manifest"
	"github.com/seblak-bujangan/seblak/internal/project"
	"github.com/seblak-bujangan/seblak/internal/seed"
)

// Report counts check outcomes.
type Report struct {
	OK       int
	Missing  int
	Warnings int
	Failures int
}

// Healthy reports whether no check failed.
func (r *Report) Healthy() bool { return r.Failures == 0 }

// Checker runs the checks. LookPath and Probe default to exec.LookPath and
// running "<bin> --version".
type Checker struct {
	Layout   *project.Layout
	Settings *config.Settings
	Out      io.Writer
	LookPath func(file string) (string, error)
	Probe    func(ctx context.Context, bin string) (string, error)

	report Report
}

// Run executes every check and returns the tally.
func (c *Checker) Run(ctx context.Context) *Report {
	c.report = Report{}
	c.CheckScaffold()
	c.CheckSeeds()
	c.CheckManifest()
	c.CheckRuntime(ctx)
	fmt.Fprintf(c.Out, "\n%d ok, %d missing, %d warnings, %d failures\n",
		c.report.OK, c.report.Missing, c.report.Warnings, c.report.Failures)
	r := c.report
	return &r
}

// CheckScaffold verifies the four scaffold folders.
func (c *Checker) CheckScaffold() {
	fmt.Fprintln(c.Out, "Folder check:")
	for _, dir := range c.Layout.Folders() {
		rel := c.Layout.Rel(dir)
		info, err := os.Stat(dir)
		switch {
		case errors.Is(err, os.ErrNotExist):
			c.miss("%s/ does not exist (created by '%s start')", rel, branding.CLIName())
		case err != nil:
			c.fail("%s: %v", rel, err)
		case !info.IsDir():
			c.fail("%s exists but is not a directory", rel)
		default:
			c.ok("%s/ exists", rel)
		}
	}
}

// CheckSeeds verifies that the data files exist and carry the expected header.
func (c *Checker) CheckSeeds() {
	fmt.Fprintln(c.Out, "Data file check:")
	files := []struct {
		path   string
		header []string
	}{
		{c.Layout.OrdersFile, seed.OrdersHeader()},
		{c.Layout.ProductsFile, seed.ProductsHeader()},
	}
	for _, f := range files {
		rel := c.Layout.Rel(f.path)
		header, err := seed.ReadHeader(f.path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			c.miss("%s does not exist (created by '%s start')", rel, branding.CLIName())
		case err != nil:
			c.fail("%s: %v", rel, err)
		case !seed.HeaderMatches(header, f.header):
			c.warn("%s header is %q, expected %q", rel, strings.Join(header, ","), strings.Join(f.header, ","))
		default:
			c.ok("%s has the expected columns", rel)
		}
	}
}

// CheckManifest validates package.json and reports fields the post-install
// hook would still fill in.
func (c *Checker) CheckManifest() {
	fmt.Fprintln(c.Out, "Manifest check:")
	path := c.Layout.ManifestPath
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		c.miss("%s does not exist", project.ManifestFile)
		return
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		c.fail("%s: %v", project.ManifestFile, err)
		return
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			if issue.Path != "" {
				c.fail("%s%s: %s", project.ManifestFile, issue.Path, issue.Message)
			} else {
				c.fail("%s: %s", project.ManifestFile, issue.Message)
			}
		}
		return
	}

	doc, err := manifest.Load(path)
	if err != nil {
		c.fail("%v", err)
		return
	}
	pending, err := manifest.Patch(doc, manifest.DefaultValues())
	if err != nil {
		c.fail("%s: %v", project.ManifestFile, err)
		return
	}
	if len(pending) > 0 {
		fields := make([]string, 0, len(pending))
		for _, p := range pending {
			fields = append(fields, p.Field)
		}
		c.warn("%s is missing %s (run '%s postinstall')", project.ManifestFile, strings.Join(fields, ", "), branding.CLIName())
		return
	}
	c.ok("%s is valid and complete", project.ManifestFile)
}

// CheckRuntime looks for Python, the package manager and the app command, and
// checks the Python version.
func (c *Checker) CheckRuntime(ctx context.Context) {
	fmt.Fprintln(c.Out, "Runtime check:")
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	python := ""
	for _, bin := range []string{"python3", "python"} {
		if p, err := lookPath(bin); err == nil {
			python = p
			break
		}
	}
	if python == "" {
		c.fail("python not found")
	} else {
		c.ok("python found at %s", python)
		c.checkPythonVersion(ctx, python)
	}

	for _, bin := range []string{c.Settings.PackageManager, c.Settings.AppCommand} {
		p, err := lookPath(bin)
		if err != nil {
			c.miss("%s not found (run '%s setup')", bin, branding.CLIName())
			continue
		}
		c.ok("%s found at %s", bin, p)
	}
}

func (c *Checker) checkPythonVersion(ctx context.Context, python string) {
	probe := c.Probe
	if probe == nil {
		probe = probeVersion
	}
	out, err := probe(ctx, python)
	if err != nil {
		c.warn("could not read python version: %v", err)
		return
	}
	v, err := ExtractVersion(out)
	if err != nil {
		c.warn("%v", err)
		return
	}
	ok, err := AtLeast(v, MinPythonVersion)
	switch {
	case err != nil:
		c.warn("python version %s: %v", v, err)
	case !ok:
		c.fail("python %s is older than %s", v, MinPythonVersion)
	default:
		c.ok("python %s (>= %s)", v, MinPythonVersion)
	}
}

// probeVersion runs "<bin> --version". Python 2 prints it on stderr.
func probeVersion(ctx context.Context, bin string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, "--version").CombinedOutput()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (c *Checker) ok(format string, args ...any) {
	c.report.OK++
	fmt.Fprintf(c.Out, "  [ OK ] "+format+"\n", args...)
}

func (c *Checker) miss(format string, args ...any) {
	c.report.Missing++
	fmt.Fprintf(c.Out, "  [MISS] "+format+"\n", args...)
}

func (c *Checker) warn(format string, args ...any) {
	c.report.Warnings++
	fmt.Fprintf(c.Out, "  [WARN] "+format+"\n", args...)
}

func (c *Checker) fail(format string, args ...any) {
	c.report.Failures++
	fmt.Fprintf(c.Out, "  [FAIL] "+format+"\n", args...)
}
