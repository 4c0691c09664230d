// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides HTTP request handling functionality for Veya Reader.

Route definitions are centralized in the router package's DefineRoutes function,
which sets up all paths and their corresponding handlers.
*/
package middleware
