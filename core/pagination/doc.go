// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package pagination owns the paged-reading state machine.

A [Controller] tracks the current page index and reconciles two competing
stimuli: user-driven scroll settling and externally requested index changes.
Every change carries a source tag, and only user-sourced commits notify the
external listener. This asymmetry is what prevents the classic feedback loop
when a parent holds the index as controlled state: parent -> controller
(programmatic request) must never echo back as controller -> parent
(notification).

The controller is UI-agnostic. It issues a ScrollTo side effect and waits
for the embedding surface to report settling; it never assumes the scroll
actually happened. It is single-goroutine by design: the reading surface is
event-driven with no parallel execution, so the controller carries no locks
and must not be shared across goroutines.
*/
package pagination
