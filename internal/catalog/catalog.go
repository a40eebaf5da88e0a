// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

// Package catalog defines the closed set of supported static site generators
// and project ecosystems, together with the compiled-in scoring data the
// recommendation engine consumes.
//
// Both SSG and Ecosystem are closed string enumerations. Every external
// boundary (preference updates, analysis ingestion) must validate through
// ParseSSG / ParseEcosystem so no unchecked identifier enters the system.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// SSG identifies a static site generator from the fixed catalog.
type SSG string

// The supported generators. The set is closed; adding an entry requires a
// matching Entry in the catalog below.
const (
	Docusaurus SSG = "docusaurus"
	Hugo       SSG = "hugo"
	Eleventy   SSG = "eleventy"
	MkDocs     SSG = "mkdocs"
	Jekyll     SSG = "jekyll"
)

// Ecosystem identifies the analyzer-detected primary package ecosystem of a
// project.
type Ecosystem string

// The recognized ecosystems. EcosystemOther covers projects whose primary
// language has no dedicated documentation toolchain.
const (
	EcosystemJavaScript Ecosystem = "javascript"
	EcosystemPython     Ecosystem = "python"
	EcosystemRuby       Ecosystem = "ruby"
	EcosystemGo         Ecosystem = "go"
	EcosystemOther      Ecosystem = "other"
)

// ErrUnknownSSG indicates an identifier outside the catalog.
var ErrUnknownSSG = errors.New("unknown static site generator")

// ErrUnknownEcosystem indicates an ecosystem outside the recognized set.
var ErrUnknownEcosystem = errors.New("unknown ecosystem")

// SizeClass describes how heavyweight a generator is, which drives the
// size-fit component of the score.
type SizeClass int

const (
	// SizeClassLight generators suit very small projects and lose fit as
	// projects grow.
	SizeClassLight SizeClass = iota
	// SizeClassMedium generators fit most project sizes.
	SizeClassMedium
	// SizeClassHeavy generators carry setup overhead that only pays off
	// beyond a minimum project size.
	SizeClassHeavy
)

// Entry is the compiled-in scoring record for one generator.
type Entry struct {
	// ID is the generator identifier.
	ID SSG

	// EcosystemAffinity maps ecosystems to match strength in [0,1].
	// Missing ecosystems score zero affinity.
	EcosystemAffinity map[Ecosystem]float64

	// Languages lists languages the generator has first-class support for.
	Languages map[string]struct{}

	// SizeClass drives the size-fit curve.
	SizeClass SizeClass

	// PopularityBias is a small fixed score component in [0, 0.10]
	// reflecting ecosystem adoption.
	PopularityBias float64

	// Priority breaks scoring ties; lower wins. Unique across the catalog
	// and stable across releases so recommendations are reproducible.
	Priority int
}

// entries is the catalog in priority order.
var entries = []Entry{
	{
		ID:                Docusaurus,
		EcosystemAffinity: map[Ecosystem]float64{EcosystemJavaScript: 1.0},
		Languages:         langs("javascript", "typescript"),
		SizeClass:         SizeClassHeavy,
		PopularityBias:    0.10,
		Priority:          1,
	},
	{
		ID: Hugo,
		EcosystemAffinity: map[Ecosystem]float64{
			EcosystemGo:    1.0,
			EcosystemOther: 0.6,
		},
		Languages:      langs("go"),
		SizeClass:      SizeClassMedium,
		PopularityBias: 0.09,
		Priority:       2,
	},
	{
		ID:                Eleventy,
		EcosystemAffinity: map[Ecosystem]float64{EcosystemJavaScript: 0.8},
		Languages:         langs("javascript"),
		SizeClass:         SizeClassLight,
		PopularityBias:    0.06,
		Priority:          3,
	},
	{
		ID:                MkDocs,
		EcosystemAffinity: map[Ecosystem]float64{EcosystemPython: 1.0},
		Languages:         langs("python"),
		SizeClass:         SizeClassLight,
		PopularityBias:    0.08,
		Priority:          4,
	},
	{
		ID:                Jekyll,
		EcosystemAffinity: map[Ecosystem]float64{EcosystemRuby: 1.0},
		Languages:         langs("ruby"),
		SizeClass:         SizeClassMedium,
		PopularityBias:    0.05,
		Priority:          5,
	},
}

func langs(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// Entries returns the catalog in fixed priority order. The returned slice
// must not be modified.
func Entries() []Entry {
	return entries
}

// Lookup returns the catalog entry for the given generator.
func Lookup(id SSG) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// ParseSSG validates an identifier against the catalog.
func ParseSSG(s string) (SSG, error) {
	id := SSG(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := Lookup(id); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSSG, s)
	}
	return id, nil
}

// ParseEcosystem validates an ecosystem name against the recognized set.
func ParseEcosystem(s string) (Ecosystem, error) {
	eco := Ecosystem(strings.ToLower(strings.TrimSpace(s)))
	switch eco {
	case EcosystemJavaScript, EcosystemPython, EcosystemRuby, EcosystemGo, EcosystemOther:
		return eco, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEcosystem, s)
	}
}

// String returns the generator identifier.
func (s SSG) String() string { return string(s) }

// String returns the ecosystem name.
func (e Ecosystem) String() string { return string(e) }
