// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package ibmpkg

import (
	"path/filepath"
	"regexp"

	"github.com/juju/errors"
)

var validUser = regexp.MustCompile("^[0-9A-Za-z_-]+$")

// Validate checks the resource's cross-field invariants. When
// catalogPresent is false the resource is not being compiled as part of
// a real catalog (introspection, partial tooling) and validation is
// skipped entirely. Rules run in a fixed order and the first violation
// wins; there is no partial success.
func (r *Resource) Validate(catalogPresent bool) error {
	if !catalogPresent {
		return nil
	}
	if r.Response() == "" {
		required := []struct {
			attr  string
			value string
		}{
			{targetKey, r.Target()},
			{packageKey, r.Package()},
			{versionKey, r.Version()},
			{repositoryKey, r.Repository()},
		}
		for _, f := range required {
			if f.value == "" {
				return errors.NotValidf("package resource %q without response file missing %s", r.name, f.attr)
			}
		}
	}
	if !validUser.MatchString(r.User()) {
		return errors.NotValidf("package resource %q: user %q", r.name, r.User())
	}
	absolute := []struct {
		attr  string
		value string
	}{
		{imclPathKey, r.IMCLPath()},
		{targetKey, r.Target()},
		{responseKey, r.Response()},
	}
	for _, f := range absolute {
		if f.value != "" && !filepath.IsAbs(f.value) {
			return errors.NotValidf("package resource %q: relative %s %q", r.name, f.attr, f.value)
		}
	}
	return nil
}
