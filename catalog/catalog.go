// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package catalog holds the compile-side view of a configuration
// catalog: the set of declared entities and the advisory ordering edges
// computed for them. The scheduler that materializes entities in edge
// order is an external consumer.
package catalog

import (
	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/isabella232/puppetlabs-ibm-installation-manager/core/entity"
)

var logger = loggo.GetLogger("ibmpkg.catalog")

// Catalog is the set of entities declared for a single compilation.
type Catalog struct {
	entities set.Strings
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{entities: set.NewStrings()}
}

// Add declares an entity in the catalog. Entity names are unique per
// kind within a catalog.
func (c *Catalog) Add(ref entity.Reference) error {
	if ref.IsZero() || ref.Name() == "" {
		return errors.NotValidf("empty entity reference")
	}
	if !entity.IsValidKind(ref.Kind()) {
		return errors.NotValidf("entity kind %q", ref.Kind())
	}
	if c.entities.Contains(ref.String()) {
		return errors.AlreadyExistsf("entity %q", ref)
	}
	c.entities.Add(ref.String())
	return nil
}

// Has reports whether the referenced entity is declared in the catalog.
func (c *Catalog) Has(ref entity.Reference) bool {
	return c.entities.Contains(ref.String())
}

// AutoRequire turns advisory references from one entity into concrete
// ordering edges. References with an empty key or naming an entity not
// declared in the catalog are dropped silently; the hints only order
// entities that both exist. Input order is preserved and duplicates
// collapse.
func (c *Catalog) AutoRequire(from entity.Reference, refs []entity.Reference) []entity.Edge {
	var edges []entity.Edge
	seen := set.NewStrings()
	for _, ref := range refs {
		if ref.Name() == "" || seen.Contains(ref.String()) {
			continue
		}
		seen.Add(ref.String())
		if !c.Has(ref) {
			logger.Tracef("dropping ordering hint %s -> %s: no such entity", from, ref)
			continue
		}
		edges = append(edges, entity.Edge{From: from, To: ref})
	}
	return edges
}
