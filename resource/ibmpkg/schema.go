// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package ibmpkg

import (
	"github.com/juju/schema"
	"gopkg.in/juju/environschema.v1"
)

// Attribute names accepted by the package resource.
const (
	stateKey             = "state"
	packageKey           = "package"
	versionKey           = "version"
	targetKey            = "target"
	repositoryKey        = "repository"
	responseKey          = "response"
	imclPathKey          = "imcl_path"
	jdkPackageNameKey    = "jdk_package_name"
	jdkPackageVersionKey = "jdk_package_version"
	optionsKey           = "options"
	userKey              = "user"
	manageOwnershipKey   = "manage_ownership"
	packageOwnerKey      = "package_owner"
	packageGroupKey      = "package_group"
)

// States a package resource can declare.
const (
	StatePresent   = "present"
	StateInstalled = "installed"
	StateAbsent    = "absent"
)

// Declared defaults. The install runs as root and installed trees are
// owned by root unless the declaration says otherwise.
const (
	DefaultUser         = "root"
	DefaultPackageOwner = "root"
	DefaultPackageGroup = "root"
)

var configSchema = environschema.Fields{
	stateKey: {
		Description: "Whether the package should be installed or removed.",
		Type:        environschema.Tstring,
		Values:      []interface{}{StatePresent, StateInstalled, StateAbsent},
	},
	packageKey: {
		Description: "The Installation Manager identifier of the package to install.",
		Type:        environschema.Tstring,
	},
	versionKey: {
		Description: "The version of the package to install.",
		Type:        environschema.Tstring,
	},
	targetKey: {
		Description: "The absolute path the package is installed to.",
		Type:        environschema.Tstring,
	},
	repositoryKey: {
		Description: "The path to the package repository to install from.",
		Type:        environschema.Tstring,
	},
	responseKey: {
		Description: "The path to a response file carrying the full install instructions. When set, package, version, target and repository are not required.",
		Type:        environschema.Tstring,
	},
	imclPathKey: {
		Description: "The absolute path to the imcl command line tool, when it cannot be discovered.",
		Type:        environschema.Tstring,
	},
	jdkPackageNameKey: {
		Description: "The identifier of a JDK package to install alongside.",
		Type:        environschema.Tstring,
	},
	jdkPackageVersionKey: {
		Description: "The version of the JDK package to install alongside.",
		Type:        environschema.Tstring,
	},
	optionsKey: {
		Description: "Extra options passed through to the installer verbatim.",
		Type:        environschema.Tstring,
	},
	userKey: {
		Description: "The user account the install runs as.",
		Type:        environschema.Tstring,
	},
	manageOwnershipKey: {
		Description: "Whether ownership of the installed tree is managed.",
		Type:        environschema.Tbool,
	},
	packageOwnerKey: {
		Description: "The user owning the installed tree, when ownership is managed.",
		Type:        environschema.Tstring,
	},
	packageGroupKey: {
		Description: "The group owning the installed tree, when ownership is managed.",
		Type:        environschema.Tstring,
	},
}

var configDefaults = schema.Defaults{
	stateKey:             StatePresent,
	packageKey:           schema.Omit,
	versionKey:           schema.Omit,
	targetKey:            schema.Omit,
	repositoryKey:        schema.Omit,
	responseKey:          schema.Omit,
	imclPathKey:          schema.Omit,
	jdkPackageNameKey:    schema.Omit,
	jdkPackageVersionKey: schema.Omit,
	optionsKey:           schema.Omit,
	userKey:              DefaultUser,
	manageOwnershipKey:   true,
	packageOwnerKey:      DefaultPackageOwner,
	packageGroupKey:      DefaultPackageGroup,
}

var configFields = func() schema.Fields {
	fs, _, err := configSchema.ValidationSchema()
	if err != nil {
		panic(err)
	}
	return fs
}()

var configChecker = schema.FieldMap(configFields, configDefaults)

// Schema returns the attribute schema for the package resource.
func Schema() environschema.Fields {
	return configSchema
}
