// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render produces the raw diff stream for a single file pair.
//
// The external highlighter (delta) is treated as an untrusted, optional
// capability behind the Renderer interface: when it is installed the unified
// diff is piped through it and its colorized output captured, bounded by a
// wall-clock timeout that kills the whole process group on expiry. When it
// is missing or fails to launch, the builtin line diff renders an unstyled
// stream instead and the result is flagged plain so callers can surface a
// one-time advisory.
//
// # Key Types
//
//   - Options: Recognized per-render options
//   - RawDiff: Captured raw stream plus classification flags
//   - Renderer: The external-tool / builtin-fallback abstraction
//   - Invoker: Orchestrates reading, binary detection and rendering
//
// # Usage
//
//	inv := render.NewInvoker(render.NewDeltaRenderer("delta", 10*time.Second, true), 3)
//	raw, err := inv.Render(ctx, leftPath, rightPath, opts)
package render
