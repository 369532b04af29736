package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"github.com/seblak-bujangan/seblak/internal/branding"
	"github.com/seblak-bujangan/seblak/internal/manifest"
	"github.com/seblak-bujangan/seblak/internal/project"
)

// PostInstallReport summarizes what the post-install hook did.
type PostInstallReport struct {
	ScaffoldErr      error
	ManifestFound    bool
	Changes          []manifest.Change
	ManifestErr      error
	ValidationIssues []manifest.ValidationIssue
}

// PostInstall ensures the folder scaffold and fills missing package.json
// fields. It is best-effort: every failure is logged and recorded in the
// report, never returned, so an npm install is not broken by it.
func PostInstall(e *Env) *PostInstallReport {
	log := e.log().WithComponent("postinstall")
	report := &PostInstallReport{}

	fmt.Fprintln(e.Out, "Running post-install setup...")

	if err := project.EnsureScaffold(e.Out, e.Layout); err != nil {
		log.WithError(err).Warnw("could not create folder scaffold")
		report.ScaffoldErr = err
	}

	changes, found, err := patchManifest(e.Layout.ManifestPath)
	report.ManifestFound = found
	report.Changes = changes
	if err != nil {
		log.WithError(err).Errorw("failed to update package.json")
		fmt.Fprintf(e.Out, "  [FAIL] Updating %s: %v\n", project.ManifestFile, err)
		report.ManifestErr = err
	}
	for _, c := range changes {
		fmt.Fprintf(e.Out, "  [ OK ] Set %s to %q in %s\n", c.Field, c.Value, project.ManifestFile)
	}
	if found && err == nil && len(changes) == 0 {
		fmt.Fprintf(e.Out, "  [SKIP] %s already complete\n", project.ManifestFile)
	}

	if found && err == nil {
		result, verr := manifest.ValidateFile(e.Layout.ManifestPath)
		switch {
		case verr != nil:
			log.WithError(verr).Warnw("could not validate package.json")
		case !result.Valid:
			report.ValidationIssues = result.Issues
			for _, issue := range result.Issues {
				log.Warnw("package.json issue", "path", issue.Path, "problem", issue.Message)
			}
		}
	}

	cli := branding.CLIName()
	fmt.Fprintln(e.Out, "\nPost-install setup finished.")
	fmt.Fprintf(e.Out, "To run %s:\n", branding.DisplayName())
	fmt.Fprintf(e.Out, "  1. npm run setup   - install the Python dependencies (%s setup)\n", cli)
	fmt.Fprintf(e.Out, "  2. npm start       - start the application (%s start)\n", cli)
	return report
}

// patchManifest applies the fill-missing rules to the manifest at path and
// writes it back only when something changed. found is false when there is no
// manifest to patch.
func patchManifest(path string) (changes []manifest.Change, found bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &project.FileSystemError{Op: "stat", Path: path, Err: err}
	}

	doc, err := manifest.Load(path)
	if err != nil {
		return nil, true, err
	}
	changes, patchErr := manifest.Patch(doc, manifest.DefaultValues())
	if patchErr != nil {
		patchErr = fmt.Errorf("patching %s: %w", path, patchErr)
	}
	if len(changes) == 0 {
		return nil, true, patchErr
	}
	if err := manifest.Save(path, doc); err != nil {
		return nil, true, &project.FileSystemError{Op: "write", Path: path, Err: err}
	}
	return changes, true, patchErr
}
