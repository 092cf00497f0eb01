// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package classifier decides which request shape a raw user input maps to:
// a list of URLs, a game title or opaque text.
//
// Everything here is pure. The game-name heuristic is an ordered list of
// named rules so each rule can be tested on its own and the evaluation
// order stays fixed:
//
//  1. hard limits (length, not a URL)
//  2. bad rules, any match rejects
//  3. good rules, any match accepts
//  4. the token fallback
package classifier
