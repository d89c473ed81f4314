// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package entity defines the kinds of catalog entities that package
// resources can be ordered against, and the reference/edge types the
// catalog scheduler consumes.
package entity

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
)

// Kind identifies a class of catalog entity.
type Kind string

const (
	KindFile    Kind = "file"
	KindUser    Kind = "user"
	KindGroup   Kind = "group"
	KindExec    Kind = "exec"
	KindPackage Kind = "package"
)

var knownKinds = map[Kind]bool{
	KindFile:    true,
	KindUser:    true,
	KindGroup:   true,
	KindExec:    true,
	KindPackage: true,
}

// IsValidKind reports whether kind names a known entity kind.
func IsValidKind(kind Kind) bool {
	return knownKinds[kind]
}

// Reference identifies a single entity within a catalog by kind and
// catalog-unique name.
type Reference struct {
	kind Kind
	name string
}

// MakeReference returns a reference to the named entity of the given kind.
func MakeReference(kind Kind, name string) Reference {
	return Reference{kind: kind, name: name}
}

// ParseReference parses a reference in "kind:name" form, as written in
// catalog manifests.
func ParseReference(s string) (Reference, error) {
	kind, name, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return Reference{}, errors.NotValidf("entity reference %q", s)
	}
	if !IsValidKind(Kind(kind)) {
		return Reference{}, errors.NotValidf("entity kind %q", kind)
	}
	return MakeReference(Kind(kind), name), nil
}

// Kind returns the entity kind.
func (r Reference) Kind() Kind {
	return r.kind
}

// Name returns the entity's catalog-unique name.
func (r Reference) Name() string {
	return r.name
}

// IsZero reports whether the reference is empty.
func (r Reference) IsZero() bool {
	return r == Reference{}
}

func (r Reference) String() string {
	return fmt.Sprintf("%s:%s", r.kind, r.name)
}

// Edge is an advisory ordering hint: the entity To should be
// materialized before the entity From.
type Edge struct {
	From Reference
	To   Reference
}

func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.From, e.To)
}
