// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package views holds the hand-written templ components that render Veya Reader
pages and fragments.

Components are plain templ.ComponentFunc values writing HTML directly; all
dynamic text goes through esc and all style values through cssValue.
*/
package views
