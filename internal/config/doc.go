// SPDX-License-Identifier: MIT

// Package config loads linefem CLI settings from layered sources, lowest
// priority first:
//
//  1. defaults in code
//  2. an optional YAML file
//  3. an optional .env file (LINEFEM_* keys)
//  4. LINEFEM_* process environment variables
//
// The merged result is validated with struct tags before use.
package config
