/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package functional provides combinators building functions out of other functions: constants,
// composition, partial application, accessors and boolean combinators.
//
// Variadic combinators work on functions of the form func(...T) R so that any number of
// arguments can be bound or spread. Typed helpers (Compose2, Bind1, Bind2) cover the common
// heterogeneous cases.
package functional
