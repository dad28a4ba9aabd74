/*
Copyright © 2025 The envprov Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package provisioner orchestrates creation and configuration of an azd
// environment.
//
// # Workflow
//
// Provision runs four stages strictly in sequence, each stage fatal on
// failure:
//
//  1. Preflight: azd and az resolve on PATH, `az account show` exits zero.
//  2. EnsureEnvironment: the environment is created with
//     `azd env new <name> --no-prompt`, or selected with
//     `azd env select <name>` when it already exists.
//  3. Apply: each configuration entry is written with one
//     `azd env set KEY VALUE` invocation, in table order.
//  4. Report: a Report with the run identifier, environment name, and
//     follow-up hints.
//
// All external invocations go through a toolchain.Runner, so tests assert
// the exact command sequence with a toolchain.Recorder.
package provisioner
