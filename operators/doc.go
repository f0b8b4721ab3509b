/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package operators exposes Go operators as functions so that they can be passed to combinators.
//
// Arithmetic operators only accept numeric types: no implicit conversion between strings and
// numbers takes place. Equality comes in two flavours, StrictEqual and LooseEqual, the latter
// coercing its operands to numbers before comparing them.
package operators
