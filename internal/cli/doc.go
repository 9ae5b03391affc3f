// Package cli implements the upmon command-line interface.
//
// Each Cobra command is a thin wrapper that loads config, opens the store,
// and hands off to the package that does the work.
//
// # Command Structure
//
//	upmon                      - Monitor list dashboard (same as "upmon list")
//	upmon list                 - Monitor list dashboard
//	upmon check [--once]       - Run HTTP checks and record results
//	upmon endpoint add <url>   - Start monitoring a URL
//	upmon endpoint remove <id> - Stop monitoring and drop history
//	upmon endpoint list        - Print registered monitors
//	upmon init                 - Create .upmon.yaml
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) live on the root command.
// The list flags (--page-size, --status, --search, --interval, --link-params,
// --no-links) are registered on both the root and "list" commands and share
// one ListFlags value. Flags override the matching config values.
//
// Monitors named in the config file are registered in the store whenever a
// command opens it, so a fresh store picks them up on first use.
package cli
