// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core_test

import (
	"reflect"
	"testing"

	. "github.com/khoinguyent/veya-reader/core"
)

func TestResolveBackground(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		metadata string
		want     BackgroundSpec
	}{
		{
			name:     "gradient with two stops",
			metadata: `{"pageBackgroundGradient": ["#FFF5E6", "#DDE8F8"]}`,
			want:     BackgroundSpec{Kind: BackgroundGradient, Stops: [2]string{"#FFF5E6", "#DDE8F8"}},
		},
		{
			name:     "gradient uses only the first two stops",
			metadata: `{"pageBackgroundGradient": ["#111", "#222", "#333"]}`,
			want:     BackgroundSpec{Kind: BackgroundGradient, Stops: [2]string{"#111", "#222"}},
		},
		{
			name:     "gradient wins over solid",
			metadata: `{"pageBackgroundGradient": ["#111", "#222"], "pageBackground": "#FFF"}`,
			want:     BackgroundSpec{Kind: BackgroundGradient, Stops: [2]string{"#111", "#222"}},
		},
		{
			name:     "single-stop gradient falls through to solid",
			metadata: `{"pageBackgroundGradient": ["#111"], "pageBackground": "#FFF"}`,
			want:     SolidBackground("#FFF"),
		},
		{
			name:     "gradient polluted with non-strings keeps usable stops",
			metadata: `{"pageBackgroundGradient": ["#111", null, "#222"]}`,
			want:     BackgroundSpec{Kind: BackgroundGradient, Stops: [2]string{"#111", "#222"}},
		},
		{
			name:     "gradient with one usable stop is treated as unset",
			metadata: `{"pageBackgroundGradient": ["#111", 42]}`,
			want:     BackgroundSpec{Kind: BackgroundUnset},
		},
		{
			name:     "explicit solid",
			metadata: `{"pageBackground": "#DDE8F8"}`,
			want:     SolidBackground("#DDE8F8"),
		},
		{
			name:     "explicit transparent is a solid, not unset",
			metadata: `{"pageBackground": "transparent"}`,
			want:     SolidBackground("transparent"),
		},
		{
			name:     "nothing declared is unset",
			metadata: `{"backgroundColor": "#FFF"}`,
			want:     BackgroundSpec{Kind: BackgroundUnset},
		},
		{
			name:     "empty metadata is unset",
			metadata: `{}`,
			want:     BackgroundSpec{Kind: BackgroundUnset},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveBackground(metaBlock("paragraph", `{}`, tc.metadata))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ResolveBackground() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestBackgroundSpec_Or(t *testing.T) {
	t.Parallel()

	prev := SolidBackground("#FFF5E6")

	unset := BackgroundSpec{Kind: BackgroundUnset}
	if got := unset.Or(prev); !reflect.DeepEqual(got, prev) {
		t.Errorf("Unset.Or(prev) = %+v, must retain prev", got)
	}

	next := SolidBackground("#DDE8F8")
	if got := next.Or(prev); !reflect.DeepEqual(got, next) {
		t.Errorf("Solid.Or(prev) = %+v, must replace prev", got)
	}
}

func TestPageBackground_CarriesForward(t *testing.T) {
	t.Parallel()

	article := NormalizedArticle{
		Config: PresentationConfig{PageBackground: "#FFFFFF"},
		Blocks: []RawBlock{
			metaBlock("hero", `{}`, `{"pageBackground": "#FFF5E6"}`),
			metaBlock("paragraph", `{}`, `{}`), // unset: must retain #FFF5E6
			metaBlock("paragraph", `{}`, `{"pageBackground": "#E8F4F8"}`),
		},
	}

	cases := []struct {
		index int
		want  string
	}{
		{0, "#FFF5E6"},
		{1, "#FFF5E6"}, // the regression-prone case: unset never clears
		{2, "#E8F4F8"},
	}

	for _, tc := range cases {
		got := PageBackground(article, tc.index)
		if got.Kind != BackgroundSolid || got.Color != tc.want {
			t.Errorf("PageBackground(index=%d) = %+v, want solid %s", tc.index, got, tc.want)
		}
	}
}

func TestResolveBackground_Pure(t *testing.T) {
	t.Parallel()

	blk := metaBlock("paragraph", `{}`, `{"pageBackgroundGradient": ["#111", "#222"]}`)

	first := ResolveBackground(blk)
	for range 10 {
		if next := ResolveBackground(blk); !reflect.DeepEqual(first, next) {
			t.Fatalf("ResolveBackground is not pure: %+v != %+v", first, next)
		}
	}
}
