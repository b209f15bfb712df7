// SPDX-License-Identifier: MIT

// Package config loads refinement settings from YAML or TOML files.
//
// Load starts from Default() and decodes the file over it, so a file only
// needs the keys it changes:
//
//	scheme: loop
//	mode: adaptive
//	depth: 4
//	boundary: edgeonly
//	workers: 8
//	log:
//	  level: debug
//	  file:
//	    path: /var/log/subdiv.log
//
// Validate checks every enumerated field; Request and BoundaryMode convert
// the validated strings into the typed values the library packages take.
package config
