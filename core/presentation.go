// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"github.com/tidwall/gjson"
)

// Engine hard-coded defaults, the last tier of the style fallback chain.
//
// These apply only when neither block metadata nor the article's
// presentation config specify an attribute.
const (
	DefaultTapThreshold        = 0.4
	defaultPagePadding         = 20.0
	defaultPageVerticalPadding = 32.0
	defaultBlockSpacing        = 16.0
	defaultBlockPadding        = 20.0
	defaultAlign               = "stretch"
	defaultTextAlign           = "left"
	defaultBorderRadius        = 0.0
	defaultHeroHeight          = 320.0
	defaultHeroBorderRadius    = 24.0
	defaultPageBackground      = "#FFFFFF"
)

// HeroBehaviorHide is the presentation-config value that suppresses the
// synthetic hero slide in paged mode.
const HeroBehaviorHide = "hide"

// PresentationConfig is the typed view over an article's presentation_config
// JSON. It is the middle tier of the style fallback chain: block metadata
// overrides it, and the engine defaults back it up.
//
// Numeric fields are pointers so that an explicit zero (e.g. pagePadding: 0)
// is distinguishable from an absent key.
type PresentationConfig struct {
	PagePadding         *float64
	PageVerticalPadding *float64
	PageBackground      string
	TapThreshold        *float64

	BlockSpacing           *float64
	DefaultPadding         *float64
	DefaultAlign           string
	DefaultBorderRadius    *float64
	DefaultBlockBackground string

	HeroBehavior     string
	HeroHeight       *float64
	HeroBorderRadius *float64
	HeroOverlayColor string
}

// ParsePresentationConfig extracts a PresentationConfig from the raw config
// value. Absent or wrong-typed keys stay unset.
func ParsePresentationConfig(cfg gjson.Result) PresentationConfig {
	if !cfg.IsObject() {
		return PresentationConfig{}
	}

	return PresentationConfig{
		PagePadding:         numPtr(cfg.Get("pagePadding")),
		PageVerticalPadding: numPtr(cfg.Get("pageVerticalPadding")),
		PageBackground:      strOf(cfg.Get("pageBackground")),
		TapThreshold:        numPtr(cfg.Get("tapThreshold")),

		BlockSpacing:           numPtr(cfg.Get("blockSpacing")),
		DefaultPadding:         numPtr(cfg.Get("defaultPadding")),
		DefaultAlign:           strOf(cfg.Get("defaultAlign")),
		DefaultBorderRadius:    numPtr(cfg.Get("defaultBorderRadius")),
		DefaultBlockBackground: strOf(cfg.Get("defaultBlockBackground")),

		HeroBehavior:     strOf(cfg.Get("heroBehavior")),
		HeroHeight:       numPtr(cfg.Get("heroHeight")),
		HeroBorderRadius: numPtr(cfg.Get("heroBorderRadius")),
		HeroOverlayColor: strOf(cfg.Get("heroOverlayColor")),
	}
}

// EffectiveTapThreshold returns the configured tap threshold clamped to
// (0, 1), or the engine default when unset or out of range.
func (c PresentationConfig) EffectiveTapThreshold() float64 {
	if c.TapThreshold != nil && *c.TapThreshold > 0 && *c.TapThreshold < 1 {
		return *c.TapThreshold
	}

	return DefaultTapThreshold
}

// EffectivePageBackground returns the article-wide page background, or the
// engine default when unset. Per-block page backgrounds layer on top of
// this (see ResolveBackground).
func (c PresentationConfig) EffectivePageBackground() string {
	if c.PageBackground != "" {
		return c.PageBackground
	}

	return defaultPageBackground
}

// orNum is the two-tier "config value or engine default" step used by
// ResolveStyle after block metadata has had its chance.
func orNum(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}

	return def
}

// orStr is the string counterpart of orNum.
func orStr(v, def string) string {
	if v != "" {
		return v
	}

	return def
}

// numPtr converts a gjson result into an optional float, rejecting
// non-numbers.
func numPtr(res gjson.Result) *float64 {
	if res.Type != gjson.Number {
		return nil
	}

	v := res.Num

	return &v
}
