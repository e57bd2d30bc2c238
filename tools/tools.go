//go:build tools

package tools

// This file tracks tool dependencies for reproducible builds.
// goose is used to inspect or roll back the kv_slots schema by hand.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
