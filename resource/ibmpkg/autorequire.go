// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package ibmpkg

import (
	"github.com/isabella232/puppetlabs-ibm-installation-manager/core/entity"
)

// BootstrapStepName is the catalog name of the exec step that installs
// Installation Manager itself. Every package resource orders itself
// after it.
const BootstrapStepName = "Install Installation Manager"

// AutoRequires returns the entities this resource should be
// materialized after, in declaration order: the target directory's file
// entity (when a target is set), the owning user and group, and the
// Installation Manager bootstrap step. The hints are advisory; the
// catalog drops any that name an undeclared entity. Computation is pure
// and independent of validation.
func (r *Resource) AutoRequires() []entity.Reference {
	var refs []entity.Reference
	if target := r.Target(); target != "" {
		refs = append(refs, entity.MakeReference(entity.KindFile, target))
	}
	refs = append(refs,
		entity.MakeReference(entity.KindUser, r.PackageOwner()),
		entity.MakeReference(entity.KindGroup, r.PackageGroup()),
		entity.MakeReference(entity.KindExec, BootstrapStepName),
	)
	return refs
}
