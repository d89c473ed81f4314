// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package ibmpkg models a single IBM Installation Manager package
// declaration inside a configuration catalog: the attribute schema,
// the cross-field invariants checked at catalog compile time, and the
// implicit ordering dependencies on other catalog entities.
//
// The actual installer invocation is the business of an external
// provider; nothing here touches the system.
package ibmpkg

import (
	"github.com/juju/collections/set"
	"github.com/juju/errors"

	"github.com/isabella232/puppetlabs-ibm-installation-manager/core/entity"
)

var knownAttributes = func() set.Strings {
	known := set.NewStrings()
	for name := range configSchema {
		known.Add(name)
	}
	return known
}()

// Resource is a validated-shape package declaration. Attribute values
// have been coerced and defaulted; cross-field invariants are checked
// separately by Validate.
type Resource struct {
	name  string
	attrs map[string]interface{}
}

// NewResource builds a package resource named name from raw declared
// attributes, coercing types and applying declared defaults. It fails
// only on structurally malformed input: an unknown attribute name or a
// value of the wrong type. Cross-field rules are Validate's business.
func NewResource(name string, attrs map[string]interface{}) (*Resource, error) {
	if name == "" {
		return nil, errors.NotValidf("empty package resource name")
	}
	for attr, value := range attrs {
		if !knownAttributes.Contains(attr) {
			return nil, errors.NotValidf("unknown attribute %q (value %v) on package resource %q", attr, value, name)
		}
	}
	coerced, err := configChecker.Coerce(attrs, nil)
	if err != nil {
		return nil, errors.Annotatef(err, "package resource %q", name)
	}
	r := &Resource{
		name:  name,
		attrs: coerced.(map[string]interface{}),
	}
	if !validStates.Contains(r.State()) {
		return nil, errors.NotValidf("package resource %q: state %q", name, r.State())
	}
	return r, nil
}

var validStates = set.NewStrings(StatePresent, StateInstalled, StateAbsent)

// Name returns the resource's catalog-unique display name.
func (r *Resource) Name() string {
	return r.name
}

// Reference returns the resource's own catalog reference.
func (r *Resource) Reference() entity.Reference {
	return entity.MakeReference(entity.KindPackage, r.name)
}

// State returns the declared state, defaulting to present.
func (r *Resource) State() string {
	v, _ := r.attrs[stateKey].(string)
	return v
}

// Package returns the Installation Manager package identifier.
func (r *Resource) Package() string {
	v, _ := r.attrs[packageKey].(string)
	return v
}

// Version returns the declared package version.
func (r *Resource) Version() string {
	v, _ := r.attrs[versionKey].(string)
	return v
}

// Target returns the install target directory.
func (r *Resource) Target() string {
	v, _ := r.attrs[targetKey].(string)
	return v
}

// Repository returns the package repository path.
func (r *Resource) Repository() string {
	v, _ := r.attrs[repositoryKey].(string)
	return v
}

// Response returns the response file path, if one was declared.
func (r *Resource) Response() string {
	v, _ := r.attrs[responseKey].(string)
	return v
}

// IMCLPath returns the declared path to the imcl tool, if any.
func (r *Resource) IMCLPath() string {
	v, _ := r.attrs[imclPathKey].(string)
	return v
}

// JDKPackageName returns the companion JDK package identifier, if any.
func (r *Resource) JDKPackageName() string {
	v, _ := r.attrs[jdkPackageNameKey].(string)
	return v
}

// JDKPackageVersion returns the companion JDK package version, if any.
func (r *Resource) JDKPackageVersion() string {
	v, _ := r.attrs[jdkPackageVersionKey].(string)
	return v
}

// Options returns the opaque installer options string.
func (r *Resource) Options() string {
	v, _ := r.attrs[optionsKey].(string)
	return v
}

// User returns the account the install runs as.
func (r *Resource) User() string {
	v, _ := r.attrs[userKey].(string)
	return v
}

// ManageOwnership reports whether ownership of the installed tree is
// managed.
func (r *Resource) ManageOwnership() bool {
	v, _ := r.attrs[manageOwnershipKey].(bool)
	return v
}

// PackageOwner returns the owning user of the installed tree.
func (r *Resource) PackageOwner() string {
	v, _ := r.attrs[packageOwnerKey].(string)
	return v
}

// PackageGroup returns the owning group of the installed tree.
func (r *Resource) PackageGroup() string {
	v, _ := r.attrs[packageGroupKey].(string)
	return v
}

// Attributes returns a copy of the coerced, defaulted attribute map.
func (r *Resource) Attributes() map[string]interface{} {
	attrs := make(map[string]interface{}, len(r.attrs))
	for k, v := range r.attrs {
		attrs[k] = v
	}
	return attrs
}
