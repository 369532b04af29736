package manifest

import (
	"errors"
	"fmt"

	"github.com/seblak-bujangan/seblak/internal/branding"
)

// Script aliases added to package.json.
const (
	ScriptSetup = "setup"
	ScriptStart = "start"
)

// Defaults are the values filled into a manifest when missing.
type Defaults struct {
	SetupScript string
	StartScript string
	Placeholder string // package name that gets replaced
	Name        string
	Description string
}

// DefaultValues returns the defaults for this app.
func DefaultValues() Defaults {
	cli := branding.CLIName()
	return Defaults{
		SetupScript: cli + " setup",
		StartScript: cli + " start",
		Placeholder: branding.PlaceholderPackageName(),
		Name:        branding.PackageName(),
		Description: branding.Description(),
	}
}

// Change records one field filled in by Patch.
type Change struct {
	Field string // e.g. "scripts.setup"
	Value string
}

// Patch fills in the script aliases, package name and description when they
// are missing. Values already set are never overwritten; the name is only
// replaced when it equals the placeholder. The applied changes are returned in
// order; an empty result means the document is already complete.
//
// Each rule applies on its own: when scripts is not an object the script
// rules are skipped and reported in the error, but name and description are
// still filled and returned alongside it.
func Patch(doc *Document, def Defaults) ([]Change, error) {
	changes, scriptsErr := patchScripts(doc, def)

	if name, ok := doc.String("name"); ok && name == def.Placeholder {
		if err := doc.setString("name", def.Name); err != nil {
			return changes, errors.Join(scriptsErr, err)
		}
		changes = append(changes, Change{Field: "name", Value: def.Name})
	}

	if raw, ok := doc.Raw("description"); !ok || isFalsy(raw) {
		if err := doc.setString("description", def.Description); err != nil {
			return changes, errors.Join(scriptsErr, err)
		}
		changes = append(changes, Change{Field: "description", Value: def.Description})
	}

	return changes, scriptsErr
}

func patchScripts(doc *Document, def Defaults) ([]Change, error) {
	scripts, err := doc.scripts()
	if err != nil {
		return nil, err
	}
	var changes []Change
	for _, s := range []struct{ name, value string }{
		{ScriptSetup, def.SetupScript},
		{ScriptStart, def.StartScript},
	} {
		if raw, ok := scripts.get(s.name); ok && !isFalsy(raw) {
			continue
		}
		if err := setObjectString(scripts, s.name, s.value); err != nil {
			return nil, err
		}
		changes = append(changes, Change{Field: "scripts." + s.name, Value: s.value})
	}
	if len(changes) > 0 {
		if err := doc.setScripts(scripts); err != nil {
			return nil, fmt.Errorf("encoding scripts: %w", err)
		}
	}
	return changes, nil
}

func setObjectString(obj *object, key, value string) error {
	raw, err := marshalString(value)
	if err != nil {
		return err
	}
	obj.set(key, raw)
	return nil
}
